package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shreya029/foodshare/schema"
)

type envelope struct {
	Success    bool               `json:"success"`
	Count      *int               `json:"count,omitempty"`
	Pagination *schema.Pagination `json:"pagination,omitempty"`
	Data       interface{}        `json:"data"`
}

func responseData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, envelope{Success: true, Data: data})
}

func responseList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, envelope{Success: true, Count: &count, Data: data})
}

func responsePage(c *gin.Context, data interface{}, count int, pagination schema.Pagination) {
	c.JSON(http.StatusOK, envelope{Success: true, Count: &count, Pagination: &pagination, Data: data})
}

// objectIDParam reads the :id path parameter. A malformed id can never
// name a record, so it is answered with notFound.
func objectIDParam(c *gin.Context, notFound error) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, notFound)
		return primitive.NilObjectID, false
	}
	return id, true
}

func pageQuery(c *gin.Context) (schema.Page, bool) {
	var params struct {
		Page  int64 `form:"page"`
		Limit int64 `form:"limit"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return schema.Page{}, false
	}
	if params.Page > schema.MaxPageNumber {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("page must be at most %d", int64(schema.MaxPageNumber)))
		return schema.Page{}, false
	}

	return schema.Page{Number: params.Page, Limit: params.Limit}.Normalize(), true
}

// dateLayouts are accepted for date fields posted by the web forms
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

// flexTime is a time.Time that also accepts plain dates
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}

	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t *flexTime) value() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.Time
}

func (t *flexTime) pointer() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}
