package students_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rage-Op/CKA-Backend/app/routes/students"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the handlers with a nil database handle; every request in
// these tests must be rejected by validation before persistence is touched.
func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/students/add", func(c *fiber.Ctx) error {
		return students.EnrollStudentAPI(c, nil)
	})
	app.Patch("/students/update/:studentId", func(c *fiber.Ctx) error {
		return students.UpdateStudentAPI(c, nil)
	})
	app.Post("/students/credit/:studentId", func(c *fiber.Ctx) error {
		return students.AddCreditAPI(c, nil)
	})
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEnrollRejectsMissingFields(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/students/add",
		`{"gender": "female", "class": "1"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEnrollRejectsMalformedBody(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/students/add", `{not json`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreditRejectsMissingBill(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/students/credit/4",
		`{"amount": 200}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreditRejectsNegativeAmount(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/students/credit/4",
		`{"amount": -50, "bill": "B-104"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreditRejectsNonNumericStudentID(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/students/credit/abc",
		`{"amount": 200, "bill": "B-104"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateRejectsNonNumericStudentID(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/students/update/NaN",
		`{"name": "Renamed"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
