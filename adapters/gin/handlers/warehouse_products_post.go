package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/warehouse"
)

type productRequest struct {
	Name        string  `json:"name"`
	Category    *string `json:"category"`
	Barcode     *string `json:"barcode"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	MinQuantity float64 `json:"min_quantity"`
	Unit        string  `json:"unit"`
	ImageURL    *string `json:"image_url"`
}

func (r *productRequest) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if r.Price < 0 || r.Quantity < 0 || r.MinQuantity < 0 {
		return "price and quantities must not be negative"
	}
	if r.Unit == "" {
		r.Unit = "pcs"
	}
	return ""
}

func HandleWarehouseProductsPOST(env Env, store *warehouse.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			ginutil.BadRequest(c, msg)
			return
		}

		id, err := store.CreateProduct(c.Request.Context(), &warehouse.Product{
			UserID:      ginutil.CurrentUserID(c),
			Name:        req.Name,
			Category:    req.Category,
			Barcode:     req.Barcode,
			Price:       req.Price,
			Quantity:    req.Quantity,
			MinQuantity: req.MinQuantity,
			Unit:        req.Unit,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			env.serverErr(c, err, "failed to create product")
			return
		}
		ginutil.OK(c, gin.H{"id": id})
	}
}
