package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/phuchoang/InteriorHub/internal/app_context"
	"github.com/phuchoang/InteriorHub/internal/config"
	"github.com/phuchoang/InteriorHub/internal/model"
	"github.com/phuchoang/InteriorHub/internal/repository"
	"github.com/phuchoang/InteriorHub/internal/util"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var registerValidatorsOnce sync.Once

func registerTestValidators(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("strNotEmpty", util.StrNotEmpty)
			_ = v.RegisterValidation("cmin", util.CustomMin)
			_ = v.RegisterValidation("cmax", util.CustomMax)
		}
	})
}

// newTestController wires a controller without storage or database. Handler
// paths under test must reject the request before reaching either.
func newTestController(t *testing.T) *Controller {
	t.Helper()
	registerTestValidators(t)

	app := &appcontext.Application{
		Config: &config.Config{},
		Logger: util.NewLogger("development"),
	}
	return NewController(app)
}

// newDBTestController additionally wires a repository over a live database.
// Point TEST_DB_DSN at a scratch postgres instance to run these tests.
func newDBTestController(t *testing.T) (*Controller, *appcontext.Application) {
	t.Helper()
	registerTestValidators(t)

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	if err := db.AutoMigrate(&model.Category{}, &model.Design{}, &model.Blog{}, &model.Information{}); err != nil {
		t.Fatal(err)
	}

	logger := util.NewLogger("development")
	app := &appcontext.Application{
		Config:     &config.Config{},
		Logger:     logger,
		Repository: repository.NewRepository(db, logger, nil, nil),
	}
	return NewController(app), app
}

func newJSONRequest(t *testing.T, method string, payload any) *http.Request {
	t.Helper()

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(method, "/", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}
