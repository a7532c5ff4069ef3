package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/straydog-api/internal/interfaces/http"
	"github.com/jhoicas/straydog-api/pkg/logger"
	"github.com/jhoicas/straydog-api/pkg/validation"
)

func validatedApp(method, path string, sets ...validation.RuleSet) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	v := validation.New()
	handlers := make([]fiber.Handler, 0, len(sets)+1)
	for _, set := range sets {
		handlers = append(handlers, apphttp.Validate(v, set))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Add(method, path, handlers...)
	return app
}

func send(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// fieldErrors returns the "errors" array of a validation envelope as field -> message.
func fieldErrors(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	body := envelope(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])
	out := map[string]string{}
	raw, _ := body["errors"].([]any)
	for _, e := range raw {
		m := e.(map[string]any)
		out[m["field"].(string)] = m["message"].(string)
	}
	return out
}

func TestRuleSets_AllVerify(t *testing.T) {
	require.NoError(t, validation.New().Verify(apphttp.RuleSets()...))
}

func TestValidate_DonationAmount(t *testing.T) {
	app := validatedApp(http.MethodPost, "/donations", apphttp.CreateDonationRules)
	base := `"donorName":"Ana","donorEmail":"ana@example.com","paymentMethod":"UPI"`

	resp := send(t, app, http.MethodPost, "/donations", `{`+base+`,"amount":0}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{"amount": "Amount must be greater than 0"}, fieldErrors(t, resp))

	resp = send(t, app, http.MethodPost, "/donations", `{`+base+`,"amount":"abc"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, app, http.MethodPost, "/donations", `{`+base+`,"amount":1}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	app := validatedApp(http.MethodPost, "/dog-reports", apphttp.CreateDogReportRules)

	resp := send(t, app, http.MethodPost, "/dog-reports",
		`{"description":"   ","condition":"injured","location":"Main St","reporterName":"","reporterContact":"555"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{
		"description":  "Description is required",
		"condition":    "Invalid condition",
		"reporterName": "Reporter name is required",
	}, fieldErrors(t, resp))
}

func TestValidate_EmptyBodyFailsRequiredFields(t *testing.T) {
	app := validatedApp(http.MethodPost, "/login", apphttp.LoginRules)

	resp := send(t, app, http.MethodPost, "/login", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Len(t, fieldErrors(t, resp), 2)
}

func TestValidate_MalformedJSON(t *testing.T) {
	app := validatedApp(http.MethodPost, "/login", apphttp.LoginRules)

	resp := send(t, app, http.MethodPost, "/login", `{"email":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", envelope(t, resp)["message"])
}

func TestValidate_FormBody(t *testing.T) {
	app := validatedApp(http.MethodPost, "/login", apphttp.LoginRules)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a%40example.com&password=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestValidate_PathID(t *testing.T) {
	app := validatedApp(http.MethodGet, "/things/:id", apphttp.IDRules)

	resp := send(t, app, http.MethodGet, "/things/not-an-id", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{"id": "Invalid ID format"}, fieldErrors(t, resp))

	resp = send(t, app, http.MethodGet, "/things/507F1F77BCF86CD799439011", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestValidate_Pagination(t *testing.T) {
	app := validatedApp(http.MethodGet, "/things", apphttp.PaginationRules)

	cases := []struct {
		query string
		code  int
	}{
		{"", http.StatusNoContent},
		{"?page=2&limit=100", http.StatusNoContent},
		{"?page=0", http.StatusBadRequest},
		{"?limit=101", http.StatusBadRequest},
		{"?limit=ten", http.StatusBadRequest},
		{"?page=-1&limit=0", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			resp := send(t, app, http.MethodGet, "/things"+tc.query, "")
			defer resp.Body.Close()
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}

	resp := send(t, app, http.MethodGet, "/things?page=-1&limit=0", "")
	assert.Len(t, fieldErrors(t, resp), 2)
}

func TestValidate_ChainedSets(t *testing.T) {
	app := validatedApp(http.MethodPatch, "/volunteers/:id/status", apphttp.IDRules, apphttp.VolunteerStatusRules)

	resp := send(t, app, http.MethodPatch, "/volunteers/507f1f77bcf86cd799439011/status", `{"status":"approved"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "Invalid status"}, fieldErrors(t, resp))

	resp = send(t, app, http.MethodPatch, "/volunteers/507f1f77bcf86cd799439011/status", `{"status":"APPROVED"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
