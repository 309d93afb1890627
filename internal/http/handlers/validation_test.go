package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type bindProbe struct {
	Title     string `json:"title" binding:"required,notblank,max=5"`
	Completed *bool  `json:"completed"`
}

func runBind(t *testing.T, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var req bindProbe
		if !bindJSON(c, &req) {
			return
		}
		respondSuccess(c, http.StatusOK, "ok", req)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestBindJSON(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    int
		field   string
		message string
	}{
		{"valid", `{"title":"abc"}`, http.StatusOK, "", ""},
		{"empty body", ``, http.StatusUnprocessableEntity, "title", "The title field is required."},
		{"blank title", `{"title":"   "}`, http.StatusUnprocessableEntity, "title", "The title field is required."},
		{"too long", `{"title":"abcdef"}`, http.StatusUnprocessableEntity, "title", "The title field must not be greater than 5 characters."},
		{"wrong type", `{"title":"abc","completed":"yes"}`, http.StatusUnprocessableEntity, "completed", "The completed field must be of type boolean."},
		{"malformed", `{"title":`, http.StatusBadRequest, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, out := runBind(t, tc.body)
			if w.Code != tc.want {
				t.Fatalf("expected %d got %d (%s)", tc.want, w.Code, w.Body.String())
			}
			if tc.field == "" {
				return
			}
			errs, _ := out["errors"].(map[string]any)
			msgs, _ := errs[tc.field].([]any)
			if len(msgs) == 0 || msgs[0] != tc.message {
				t.Fatalf("expected %q on %s, got %v", tc.message, tc.field, errs)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	cases := map[string]bool{
		"1":    true,
		"42":   true,
		"0":    false,
		"-3":   false,
		"abc":  false,
		"1.5":  false,
		"9e99": false,
	}

	for raw, ok := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		if _, got := pathID(c, "id"); got != ok {
			t.Fatalf("pathID(%q) = %v, want %v", raw, got, ok)
		}
	}
}
