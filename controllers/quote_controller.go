package controllers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/quote"
	"github.com/suranga-printers/print-shop-api/services"
	"github.com/suranga-printers/print-shop-api/utils"
	"gorm.io/gorm"
)

// maxQuoteRequestMemory bounds the multipart parts kept in memory; larger parts spill to temp files
const maxQuoteRequestMemory = 32 << 20

// UpdateQuoteRequest is the admin patch body. Omitted fields are left unchanged.
type UpdateQuoteRequest struct {
	Status    *string `json:"status" binding:"omitempty,quote_status"`
	AdminNote *string `json:"admin_note"`
}

// NewQuoteReference returns a short public reference such as Q-1A2B3C4D
func NewQuoteReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "Q-" + strings.ToUpper(id[:8])
}

// CreateQuote handles POST /api/quotes - multipart quote request with up to five attachments
func CreateQuote(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxQuoteRequestMemory); err != nil && err != http.ErrNotMultipart {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid multipart form")
		return
	}

	var form quote.Form
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := quote.Validate(form); err != nil {
		respondDomainError(c, err)
		return
	}

	var files []*multipart.FileHeader
	if c.Request.MultipartForm != nil {
		files = c.Request.MultipartForm.File[quote.FilesField]
	}
	if len(files) > quote.MaxFiles {
		respondError(c, http.StatusBadRequest, "TOO_MANY_FILES",
			fmt.Sprintf("At most %d files can be attached", quote.MaxFiles))
		return
	}
	for _, fh := range files {
		if err := utils.ValidateAttachment(fh); err != nil {
			respondDomainError(c, err)
			return
		}
	}

	// the fee is always priced from the server's own table
	areas, err := activeDeliveryAreas()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load delivery areas")
		return
	}
	payload, err := quote.BuildPayload(form, areas)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	ctx := c.Request.Context()
	storage := services.GetFileStorage()

	record := payload.Quote()
	record.Reference = NewQuoteReference()
	for _, fh := range files {
		key, err := storage.Save(ctx, fh, services.QuoteFolder)
		if err != nil {
			log.Error().Err(err).Str("filename", fh.Filename).Msg("failed to store quote attachment")
			discardQuoteFiles(ctx, storage, record.Files)
			respondError(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to store attachment")
			return
		}
		record.Files = append(record.Files, models.QuoteFile{
			Filename:    fh.Filename,
			Key:         key,
			Size:        fh.Size,
			ContentType: utils.ContentType(fh.Filename),
		})
	}

	if err := config.GetDB().Create(&record).Error; err != nil {
		log.Error().Err(err).Msg("failed to create quote")
		discardQuoteFiles(ctx, storage, record.Files)
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create quote")
		return
	}

	withFileURLs(ctx, storage, &record)

	event := log.Info()
	if record.DeliveryFeeUnresolved {
		event = log.Warn().Str("delivery_area", record.DeliveryArea)
	}
	event.Str("reference", record.Reference).
		Int("files", len(record.Files)).
		Bool("fee_unresolved", record.DeliveryFeeUnresolved).
		Msg("quote received")

	go func(q models.Quote) {
		if err := services.GetNotifier().QuoteReceived(q); err != nil {
			log.Warn().Err(err).Str("reference", q.Reference).Msg("quote notification failed")
		}
	}(record)

	respondOK(c, http.StatusCreated, record)
}

func discardQuoteFiles(ctx context.Context, storage services.FileStorage, files []models.QuoteFile) {
	for _, f := range files {
		if err := storage.Delete(ctx, f.Key); err != nil {
			log.Warn().Err(err).Str("key", f.Key).Msg("failed to remove orphaned attachment")
		}
	}
}

// withFileURLs fills in the download URL of each attachment
func withFileURLs(ctx context.Context, storage services.FileStorage, q *models.Quote) {
	for i := range q.Files {
		url, err := storage.URL(ctx, q.Files[i].Key)
		if err != nil {
			log.Warn().Err(err).Str("key", q.Files[i].Key).Msg("failed to resolve attachment URL")
			continue
		}
		q.Files[i].URL = url
	}
}

// ListQuotes handles GET /api/admin/quotes?status= - newest first
func ListQuotes(c *gin.Context) {
	query := config.GetDB().Preload("Files").Order("created_at DESC").Order("id DESC")

	if status := c.Query("status"); status != "" {
		if !models.QuoteStatus(status).Valid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown quote status: "+status)
			return
		}
		query = query.Where("status = ?", status)
	}

	var quotes []models.Quote
	if err := query.Find(&quotes).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve quotes")
		return
	}

	ctx := c.Request.Context()
	storage := services.GetFileStorage()
	for i := range quotes {
		withFileURLs(ctx, storage, &quotes[i])
	}

	respondOK(c, http.StatusOK, quotes)
}

// GetQuote handles GET /api/admin/quotes/:id
func GetQuote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var q models.Quote
	if err := config.GetDB().Preload("Files").First(&q, id).Error; err != nil {
		respondLookupError(c, err, "Quote")
		return
	}

	withFileURLs(c.Request.Context(), services.GetFileStorage(), &q)
	respondOK(c, http.StatusOK, q)
}

// UpdateQuote handles PATCH /api/admin/quotes/:id.
// Any status may follow any other; status and note are saved independently.
func UpdateQuote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = models.QuoteStatus(*req.Status)
	}
	if req.AdminNote != nil {
		updates["admin_note"] = *req.AdminNote
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nothing to update: send status or admin_note")
		return
	}

	db := config.GetDB()
	var q models.Quote
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&q, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&q).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Preload("Files").First(&q, id).Error
	})
	if err != nil {
		respondLookupError(c, err, "Quote")
		return
	}

	log.Info().Uint("quote_id", id).Str("status", string(q.Status)).Msg("quote updated")
	withFileURLs(c.Request.Context(), services.GetFileStorage(), &q)
	respondOK(c, http.StatusOK, q)
}
