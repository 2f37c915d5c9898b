package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps collection endpoints so clients always get a row
// count next to the data.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, rows []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  rows,
		Total: len(rows),
	})
}
