package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tinyPNG генерирует минимальное валидное изображение для тестов
func tinyPNG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAnalyzeImage_InvalidBytes_NoRequest(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("model service must not be called for invalid images")
	}))
	defer server.Close()
	client := NewClient(server.URL, 5*time.Second, 0.3, 512)

	// Действие
	analysis, err := client.AnalyzeImage(context.Background(), []byte("definitely not an image"))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidImage)
	assert.Nil(t, analysis)
}

func TestAnalyzeImage_SortsLabelsAndNormalizesEmbedding(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze-image", r.URL.Path)

		var req analyzeImageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, classLabels, req.Labels)
		assert.NotEmpty(t, req.ImageB64)

		// Метки отдаются в произвольном порядке, вектор не нормирован
		resp := map[string]any{
			"detected_classes": []map[string]any{
				{"label": "safe", "confidence": 0.1},
				{"label": "flood", "confidence": 0.85},
				{"label": "fire", "confidence": 0.3},
			},
			"embedding": []float32{3, 4},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()
	client := NewClient(server.URL, 5*time.Second, 0.3, 2)

	// Действие
	analysis, err := client.AnalyzeImage(context.Background(), tinyPNG(t))

	// Проверки
	require.NoError(t, err)
	require.Len(t, analysis.Labels, 3)
	assert.Equal(t, "flood", analysis.Labels[0].Label)
	assert.Equal(t, "fire", analysis.Labels[1].Label)
	assert.Equal(t, "safe", analysis.Labels[2].Label)

	require.Len(t, analysis.Embedding, 2)
	assert.InDelta(t, 0.6, analysis.Embedding[0], 1e-6)
	assert.InDelta(t, 0.8, analysis.Embedding[1], 1e-6)

	var norm float64
	for _, v := range analysis.Embedding {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestAnalyzeImage_ZeroEmbeddingDropped(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"detected_classes": []map[string]any{{"label": "fire", "confidence": 0.7}},
			"embedding":        []float32{0, 0, 0},
		})
	}))
	defer server.Close()
	client := NewClient(server.URL, 5*time.Second, 0.3, 3)

	// Действие
	analysis, err := client.AnalyzeImage(context.Background(), tinyPNG(t))

	// Проверки: нулевой вектор непригоден для косинусной близости
	require.NoError(t, err)
	assert.Nil(t, analysis.Embedding)
	require.Len(t, analysis.Labels, 1)
}

func TestAnalyzeImage_WrongDimensionDropped(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"detected_classes": []map[string]any{{"label": "flood", "confidence": 0.9}},
			"embedding":        []float32{1, 2, 3},
		})
	}))
	defer server.Close()
	client := NewClient(server.URL, 5*time.Second, 0.3, 512)

	// Действие
	analysis, err := client.AnalyzeImage(context.Background(), tinyPNG(t))

	// Проверки: вектор не той размерности не влезет в хранилище,
	// классификация при этом сохраняется
	require.NoError(t, err)
	assert.Nil(t, analysis.Embedding)
	require.Len(t, analysis.Labels, 1)
	assert.Equal(t, "flood", analysis.Labels[0].Label)
}

func TestAnalyzeImage_ServiceError_ModelUnavailable(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	client := NewClient(server.URL, 5*time.Second, 0.3, 512)

	// Действие
	analysis, err := client.AnalyzeImage(context.Background(), tinyPNG(t))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrModelUnavailable)
	assert.Nil(t, analysis)
}

func TestHealth(t *testing.T) {
	// Подготовка
	healthy := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer server.Close()
	client := NewClient(server.URL, 5*time.Second, 0.3, 512)

	// Действие и проверки
	require.NoError(t, client.Health(context.Background()))

	healthy = false
	err := client.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrModelUnavailable)
}
