package ml

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"math"
	"sort"

	// Регистрация декодеров для проверки, что байты действительно изображение
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/shenikar/disaster_triage_system/internal/models"
)

// classLabels - фиксированный набор меток мультиклассификатора изображений
var classLabels = []string{"fire", "flood", "safe"}

type analyzeImageRequest struct {
	ImageB64 string   `json:"image_b64"`
	Labels   []string `json:"labels"`
}

type analyzeImageResponse struct {
	DetectedClasses []struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	} `json:"detected_classes"`
	Embedding []float32 `json:"embedding"`
}

// AnalyzeImage классифицирует изображение и возвращает его эмбеддинг.
// Функция чистая относительно байтов: никаких побочных эффектов.
// Возвращает ErrInvalidImage, если байты не декодируются, и ErrModelUnavailable,
// если сервис моделей недоступен.
func (c *Client) AnalyzeImage(ctx context.Context, imageBytes []byte) (*models.ImageAnalysis, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(imageBytes)); err != nil {
		return nil, fmt.Errorf("ml: cannot decode image: %w", models.ErrInvalidImage)
	}

	req := analyzeImageRequest{
		ImageB64: base64.StdEncoding.EncodeToString(imageBytes),
		Labels:   classLabels,
	}
	var resp analyzeImageResponse
	if err := c.postJSON(ctx, "/analyze-image", req, &resp); err != nil {
		return nil, err
	}

	analysis := &models.ImageAnalysis{}
	for _, class := range resp.DetectedClasses {
		analysis.Labels = append(analysis.Labels, models.ClassLabel{
			Label:      class.Label,
			Confidence: class.Confidence,
		})
	}
	// Метки ранжируются по убыванию уверенности; суммироваться в 1 они не обязаны
	sort.SliceStable(analysis.Labels, func(i, j int) bool {
		return analysis.Labels[i].Confidence > analysis.Labels[j].Confidence
	})

	// Вектор чужой размерности не пройдёт в колонку vector(N) и бесполезен
	// для сравнения с уже сохранёнными - инцидент остаётся без эмбеддинга
	if c.embeddingDim > 0 && len(resp.Embedding) > 0 && len(resp.Embedding) != c.embeddingDim {
		return analysis, nil
	}

	analysis.Embedding = normalizeL2(resp.Embedding)
	return analysis, nil
}

// normalizeL2 приводит вектор к единичной длине, чтобы косинусная близость
// сводилась к скалярному произведению. Нулевой или пустой вектор отбрасывается.
func normalizeL2(vec []float32) []float32 {
	if len(vec) == 0 {
		return nil
	}
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return nil
	}
	norm := math.Sqrt(sum)
	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / norm)
	}
	return normalized
}
