package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/bookmarkd/bookmarkd/internal/bookmark/repository"
	"github.com/bookmarkd/bookmarkd/internal/bookmark/service"
)

func newTestRouter() *gin.Engine {
	g := gin.New()
	svc := service.New(repository.NewMemoryRepo(), bookmark.DefaultRatingBounds)
	RegisterBookmarkRoutes(g.Group("/api/bookmarks"), svc)
	return g
}

func doJSON(t *testing.T, g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestBookmarkHandler_CreateThenGet(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodPost, "/api/bookmarks", `{"title":"Test title","url":"https://www.test.com","rating":"3"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, "Test title", created["title"])
	require.Equal(t, "https://www.test.com", created["url"])
	require.EqualValues(t, 3, created["rating"])
	require.Equal(t, "/api/bookmarks/"+id, w.Header().Get("Location"))

	w2 := doJSON(t, g, http.MethodGet, "/api/bookmarks/"+id, "")
	require.Equal(t, http.StatusOK, w2.Code)
	require.JSONEq(t, w.Body.String(), w2.Body.String())
}

func TestBookmarkHandler_ListEmpty(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodGet, "/api/bookmarks", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestBookmarkHandler_CreateValidationErrors(t *testing.T) {
	g := newTestRouter()

	cases := []struct {
		body    string
		message string
	}{
		{`{"url":"https://a.com","rating":3}`, "title is required"},
		{`{"title":"t","rating":3}`, "url is required"},
		{`{"title":"t","url":"https://a.com"}`, "rating is required"},
		{`{"title":"t","url":"https://a.com","rating":6}`, "rating must be between 0 and 5"},
		{`{"title":"t","url":"https://a.com","rating":-5}`, "rating must be between 0 and 5"},
		{`{"title":"t","url":"ajogijasogi","rating":3}`, "url must be valid"},
	}
	for _, tc := range cases {
		w := doJSON(t, g, http.MethodPost, "/api/bookmarks", tc.body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", tc.body)
		require.JSONEq(t, `{"error":{"message":"`+tc.message+`"}}`, w.Body.String())
	}

	// nothing was persisted
	w := doJSON(t, g, http.MethodGet, "/api/bookmarks", "")
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestBookmarkHandler_CreateSanitizesInput(t *testing.T) {
	g := newTestRouter()

	payload := map[string]interface{}{
		"title":       `Bad script <script>alert("xss");</script>`,
		"url":         "https://www.badtest.com",
		"description": `Bad image <img src="https://url.to.file.which/does-not.exist" onerror="alert(document.cookie);">. But not <strong>all</strong> bad.`,
		"rating":      "2",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	w := doJSON(t, g, http.MethodPost, "/api/bookmarks", string(raw))
	require.Equal(t, http.StatusCreated, w.Code)

	body := w.Body.String()
	require.NotContains(t, body, "<script")
	require.NotContains(t, body, "onerror")
	require.Contains(t, body, "strong")
}

func TestBookmarkHandler_GetMissing(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodGet, "/api/bookmarks/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":{"message":"Bookmark does not exist"}}`, w.Body.String())
}

func TestBookmarkHandler_PatchFlow(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodPost, "/api/bookmarks", `{"title":"Old","url":"https://old.com","description":"keep","rating":4}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	// missing id beats patch validation
	w = doJSON(t, g, http.MethodPatch, "/api/bookmarks/nope", `{}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	// empty patch is rejected
	w = doJSON(t, g, http.MethodPatch, "/api/bookmarks/"+id, `{"unknown":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":{"message":"Request body must include at least one of 'title', 'url', 'description' and 'rating'"}}`, w.Body.String())

	// a real patch returns 204 with an empty body
	w = doJSON(t, g, http.MethodPatch, "/api/bookmarks/"+id, `{"title":"Updated Title"}`)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	// re-fetch shows the merge touched only the title
	w = doJSON(t, g, http.MethodGet, "/api/bookmarks/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Updated Title", got["title"])
	require.Equal(t, "https://old.com", got["url"])
	require.Equal(t, "keep", got["description"])
	require.EqualValues(t, 4, got["rating"])
	require.Equal(t, id, got["id"])
}

func TestBookmarkHandler_DeleteFlow(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodDelete, "/api/bookmarks/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":{"message":"Bookmark does not exist"}}`, w.Body.String())

	w = doJSON(t, g, http.MethodPost, "/api/bookmarks", `{"title":"t","url":"https://a.com","rating":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = doJSON(t, g, http.MethodDelete, "/api/bookmarks/"+id, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	w = doJSON(t, g, http.MethodGet, "/api/bookmarks", "")
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestBookmarkHandler_MalformedJSON(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodPost, "/api/bookmarks", `{"title":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
