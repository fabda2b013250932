package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Init()
}

type samplePayload struct {
	Name   string `json:"name" binding:"required,max=10"`
	Email  string `json:"email" binding:"required,email"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p samplePayload
	return c.ShouldBindJSON(&p)
}

type normalizedPayload struct {
	Name  string `json:"name" binding:"required,max=10"`
	Email string `json:"email" binding:"required,email"`
}

func (p *normalizedPayload) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
}

func bindNormalized(t *testing.T, body string) (*normalizedPayload, error) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p normalizedPayload
	return &p, BindJSON(c, &p)
}

func TestBindJSONRejectsWhitespaceOnlyRequired(t *testing.T) {
	_, err := bindNormalized(t, `{"name":"   ","email":"a@b.com"}`)
	require.Error(t, err)
	assert.Contains(t, ToDetails(err), "name")
}

func TestBindJSONTrimsBeforeRules(t *testing.T) {
	p, err := bindNormalized(t, `{"name":"Jane","email":"  a@b.com  "}`)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", p.Email)
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsSyntaxError(t *testing.T) {
	err := bindSample(t, `{"name": `)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, details)
}

func TestToDetailsTypeMismatchNamesField(t *testing.T) {
	err := bindSample(t, `{"name":"A","email":"a@b.com","rating":4.5}`)
	require.Error(t, err)

	details := ToDetails(err)
	require.Contains(t, details, "rating")
	assert.Contains(t, details["rating"], "must be of type")
}

func TestToDetailsCollectsEveryViolation(t *testing.T) {
	err := bindSample(t, `{"name":"this name is way too long","email":"nope","rating":9}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Len(t, details, 3)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "rating")
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := bindSample(t, `{}`)
	require.Error(t, err)

	details := ToDetails(err)
	// Field names come from json tags, not Go identifiers.
	assert.Contains(t, details, "name")
	assert.NotContains(t, details, "Name")
}
