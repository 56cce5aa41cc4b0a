package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phuchoang/InteriorHub/internal/constant"
)

func tooManySubImages() []string {
	subImages := make([]string, constant.MaxSubImages+1)
	for i := range subImages {
		subImages[i] = fmt.Sprintf("http://localhost:9000/interiorhub/designs/%d.png", i)
	}
	return subImages
}

func TestCreateDesignRejectsTooManySubImages(t *testing.T) {
	c := newTestController(t)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = newJSONRequest(t, http.MethodPost, gin.H{
		"projectName": "Modern Villa",
		"mainImage":   "http://localhost:9000/interiorhub/designs/main.png",
		"landArea":    "200m2",
		"categoryId":  uuid.NewString(),
		"subImages":   tooManySubImages(),
	})

	c.Design.CreateDesign(ctx)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateDesignRejectsMalformedCategoryId(t *testing.T) {
	c := newTestController(t)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = newJSONRequest(t, http.MethodPost, gin.H{
		"projectName": "Modern Villa",
		"mainImage":   "http://localhost:9000/interiorhub/designs/main.png",
		"landArea":    "200m2",
		"categoryId":  "not-a-uuid",
	})

	c.Design.CreateDesign(ctx)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestUpdateDesignRejectsTooManySubImages(t *testing.T) {
	c := newTestController(t)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Params = gin.Params{{Key: "designId", Value: uuid.NewString()}}
	ctx.Request = newJSONRequest(t, http.MethodPut, gin.H{
		"subImages": tooManySubImages(),
	})

	c.Design.UpdateDesign(ctx)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestUpdateDesignRejectsMalformedId(t *testing.T) {
	c := newTestController(t)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Params = gin.Params{{Key: "designId", Value: "not-a-uuid"}}
	ctx.Request = newJSONRequest(t, http.MethodPut, gin.H{})

	c.Design.UpdateDesign(ctx)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestGetDesignByIdRejectsMalformedId(t *testing.T) {
	c := newTestController(t)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Params = gin.Params{{Key: "designId", Value: "42"}}
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	c.Design.GetDesignById(ctx)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
