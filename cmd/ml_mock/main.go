package main

import (
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Детерминированная заглушка ML-сервиса для локальной разработки и демо.
// Эмбеддинг выводится из хеша изображения, сущности - из простых эвристик.

const embeddingDim = 512

type analyzeImageRequest struct {
	ImageB64 string   `json:"image_b64"`
	Labels   []string `json:"labels"`
}

type detectedClass struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type analyzeImageResponse struct {
	DetectedClasses []detectedClass `json:"detected_classes"`
	Embedding       []float32       `json:"embedding"`
}

type extractEntitiesRequest struct {
	Text      string   `json:"text"`
	Labels    []string `json:"labels"`
	Threshold float64  `json:"threshold"`
}

type entitySpan struct {
	Label string  `json:"label"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type extractEntitiesResponse struct {
	Entities []entitySpan `json:"entities"`
}

func analyzeImage(c *gin.Context) {
	var req analyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	imageBytes, err := base64.StdEncoding.DecodeString(req.ImageB64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 image"})
		return
	}

	resp := analyzeImageResponse{
		Embedding: deterministicEmbedding(imageBytes),
	}
	// Уверенности раскладываются по хешу: одинаковые байты дают одинаковый ответ
	digest := sha256.Sum256(imageBytes)
	for i, label := range req.Labels {
		resp.DetectedClasses = append(resp.DetectedClasses, detectedClass{
			Label:      label,
			Confidence: float64(digest[i%len(digest)]) / 255.0,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func extractEntities(c *gin.Context) {
	var req extractEntitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp := extractEntitiesResponse{Entities: []entitySpan{}}
	lower := strings.ToLower(req.Text)
	for keyword, label := range map[string]string{
		"street":   "Location",
		"bridge":   "Location",
		"district": "Location",
		"urgent":   "Urgency",
		"water":    "Resource_Needed",
		"medicine": "Resource_Needed",
		"blankets": "Resource_Needed",
	} {
		if idx := strings.Index(lower, keyword); idx >= 0 {
			resp.Entities = append(resp.Entities, entitySpan{
				Label: label,
				Text:  req.Text[idx : idx+len(keyword)],
				Score: 0.9,
			})
		}
	}
	c.JSON(http.StatusOK, resp)
}

// deterministicEmbedding растягивает SHA-256 изображения на вектор нужной размерности
func deterministicEmbedding(imageBytes []byte) []float32 {
	digest := sha256.Sum256(imageBytes)
	embedding := make([]float32, embeddingDim)
	for i := range embedding {
		embedding[i] = float32(digest[i%len(digest)])/255.0 - 0.5
	}
	return embedding
}

func main() {
	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/analyze-image", analyzeImage)
	router.POST("/extract-entities", extractEntities)

	if err := router.Run(":8500"); err != nil {
		panic(err)
	}
}
