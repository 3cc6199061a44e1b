package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itemHTTP "tutorial-api/internal/item/delivery/http"
	"tutorial-api/internal/item/repository/memory"
	"tutorial-api/internal/item/usecase"
	pkgErrors "tutorial-api/pkg/errors"
	"tutorial-api/pkg/log"
	"tutorial-api/pkg/validation"
)

type errorResp struct {
	ErrorCode int                    `json:"error_code"`
	Message   string                 `json:"message"`
	Errors    []pkgErrors.FieldError `json:"errors"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Setup())

	l := log.NewNop()
	uc := usecase.New(memory.New(nil, l), l)
	r := gin.New()
	itemHTTP.RegisterRoutes(r, itemHTTP.New(l, uc))
	return r
}

func do(r *gin.Engine, method, target, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, m := range mutate {
		m(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) errorResp {
	t.Helper()
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	var resp errorResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	return resp
}

func TestGet(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/items/42", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"item_id":42}`, w.Body.String())

	resp := decodeErr(t, do(r, http.MethodGet, "/items/foo", ""))
	assert.Equal(t, []string{"path", "item_id"}, resp.Errors[0].Loc)
	assert.Equal(t, pkgErrors.TypeInt, resp.Errors[0].Type)
}

func TestList(t *testing.T) {
	r := newRouter(t)

	tcs := []struct {
		target string
		want   string
	}{
		{"/items/", `[{"item_name":"Foo"},{"item_name":"Bar"},{"item_name":"Baz"}]`},
		{"/items/?skip=1", `[{"item_name":"Bar"},{"item_name":"Baz"}]`},
		{"/items/?skip=0&limit=1", `[{"item_name":"Foo"}]`},
		{"/items/?skip=10", `[]`},
		{"/items/?skip=1&limit=9223372036854775807", `[{"item_name":"Bar"},{"item_name":"Baz"}]`},
		{"/items/?skip=0&limit=9223372036854775806", `[{"item_name":"Foo"},{"item_name":"Bar"},{"item_name":"Baz"}]`},
	}
	for _, tc := range tcs {
		w := do(r, http.MethodGet, tc.target, "")
		assert.Equal(t, http.StatusOK, w.Code, tc.target)
		assert.JSONEq(t, tc.want, w.Body.String(), tc.target)
	}

	resp := decodeErr(t, do(r, http.MethodGet, "/items/?skip=-1&limit=x", ""))
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "limit", resp.Errors[0].Field)
	assert.Equal(t, pkgErrors.TypeInt, resp.Errors[0].Type)
	assert.Equal(t, "skip", resp.Errors[1].Field)
}

func TestCatalogueUnavailable(t *testing.T) {
	r := newRouter(t)
	cancelled := func(req *http.Request) {
		ctx, cancel := context.WithCancel(req.Context())
		cancel()
		*req = *req.WithContext(ctx)
	}

	for _, target := range []string{"/items/", "/items5/"} {
		w := do(r, http.MethodGet, target, "", cancelled)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, target)
		assert.Contains(t, w.Body.String(), "sample catalogue unavailable", target)
	}
}

func TestDetail(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/items2/foo", "")
	assert.JSONEq(t, `{"item_id":"foo"}`, w.Body.String())

	w = do(r, http.MethodGet, "/items2/foo?q=bar", "")
	assert.JSONEq(t, `{"item_id":"foo","q":"bar"}`, w.Body.String())

	w = do(r, http.MethodGet, "/items3/foo", "")
	assert.JSONEq(t, `{"item_id":"foo","description":"This is an amazing item that has a long description"}`, w.Body.String())

	for _, short := range []string{"1", "true", "on", "yes", "True"} {
		w = do(r, http.MethodGet, "/items3/foo?q=x&short="+short, "")
		assert.JSONEq(t, `{"item_id":"foo","q":"x"}`, w.Body.String(), short)
	}

	resp := decodeErr(t, do(r, http.MethodGet, "/items3/foo?short=maybe", ""))
	assert.Equal(t, pkgErrors.TypeBool, resp.Errors[0].Type)
}

func TestDetailNeedy(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/items4/foo?needy=sooooneedy", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"item_id":"foo","needy":"sooooneedy"}`, w.Body.String())

	resp := decodeErr(t, do(r, http.MethodGet, "/items4/foo", ""))
	assert.Equal(t, []string{"query", "needy"}, resp.Errors[0].Loc)
	assert.Equal(t, pkgErrors.TypeMissing, resp.Errors[0].Type)
}

func TestCreate(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/items/", `{"name":"Foo","price":35.4}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Foo","description":null,"price":35.4,"tax":null}`, w.Body.String())

	w = do(r, http.MethodPost, "/items/", `{"name":"Foo","description":"nice","price":10,"tax":2.5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Foo","description":"nice","price":10,"tax":2.5,"price_with_tax":12.5}`, w.Body.String())

	t.Run("price must exceed zero", func(t *testing.T) {
		for _, price := range []string{"0", "-1"} {
			resp := decodeErr(t, do(r, http.MethodPost, "/items/", `{"name":"Foo","price":`+price+`}`))
			assert.Equal(t, []string{"body", "price"}, resp.Errors[0].Loc)
			assert.Equal(t, "must be greater than 0", resp.Errors[0].Msg)
		}
	})

	t.Run("description length", func(t *testing.T) {
		long := strings.Repeat("a", 301)
		resp := decodeErr(t, do(r, http.MethodPost, "/items/", `{"name":"Foo","price":1,"description":"`+long+`"}`))
		assert.Equal(t, "description", resp.Errors[0].Field)

		ok := strings.Repeat("a", 300)
		w := do(r, http.MethodPost, "/items/", `{"name":"Foo","price":1,"description":"`+ok+`"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := decodeErr(t, do(r, http.MethodPost, "/items/", `{"description":"x"}`))
		require.Len(t, resp.Errors, 2)
		assert.Equal(t, "name", resp.Errors[0].Field)
		assert.Equal(t, "price", resp.Errors[1].Field)
	})

	t.Run("wrong type", func(t *testing.T) {
		resp := decodeErr(t, do(r, http.MethodPost, "/items/", `{"name":"Foo","price":"cheap"}`))
		assert.Equal(t, "price", resp.Errors[0].Field)
	})

	t.Run("malformed", func(t *testing.T) {
		decodeErr(t, do(r, http.MethodPost, "/items/", `{"name":`))
	})
}

func TestUpdate(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPut, "/items/5?q=hi", `{"name":"Foo","price":1.5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"item_id":5,"name":"Foo","description":null,"price":1.5,"tax":null,"q":"hi"}`, w.Body.String())

	resp := decodeErr(t, do(r, http.MethodPut, "/items/abc", `{"name":"Foo","price":1.5}`))
	assert.Equal(t, "item_id", resp.Errors[0].Field)
}

func TestSearch(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/items5/", "")
	assert.JSONEq(t, `{"items":[{"item_id":"Foo"},{"item_id":"Bar"}]}`, w.Body.String())

	w = do(r, http.MethodGet, "/items5/?q=fixedquery", "")
	assert.JSONEq(t, `{"items":[{"item_id":"Foo"},{"item_id":"Bar"}],"q":"fixedquery"}`, w.Body.String())

	w = do(r, http.MethodGet, "/items5/?q=", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[{"item_id":"Foo"},{"item_id":"Bar"}]}`, w.Body.String())

	w = do(r, http.MethodGet, "/items5/?q=fixed+query", "")
	assert.JSONEq(t, `{"items":[{"item_id":"Foo"},{"item_id":"Bar"}],"q":"fixed query"}`, w.Body.String())

	resp := decodeErr(t, do(r, http.MethodGet, "/items5/?q=ab", ""))
	assert.Equal(t, []string{"query", "q"}, resp.Errors[0].Loc)
	assert.Equal(t, "must be at least 3 characters", resp.Errors[0].Msg)

	decodeErr(t, do(r, http.MethodGet, "/items5/?q="+strings.Repeat("a", 51), ""))
	resp = decodeErr(t, do(r, http.MethodGet, "/items5/?q=no%21pe", ""))
	assert.Equal(t, "must contain only letters, digits and spaces", resp.Errors[0].Msg)
}

func TestQueryList(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/items6/", "")
	assert.JSONEq(t, `{"q":["foo","bar"]}`, w.Body.String())

	w = do(r, http.MethodGet, "/items6/?q=a&q=b&q=c", "")
	assert.JSONEq(t, `{"q":["a","b","c"]}`, w.Body.String())
}

func TestHeaders(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/items7/", "")
	assert.JSONEq(t, `{"user_agent":null,"x_token":null,"ads_id":null}`, w.Body.String())

	w = do(r, http.MethodGet, "/items7/", "", func(req *http.Request) {
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Add("X-Token", "foo")
		req.Header.Add("X-Token", "bar")
		req.AddCookie(&http.Cookie{Name: "ads_id", Value: "abc123"})
	})
	assert.JSONEq(t, `{"user_agent":"test-agent","x_token":["foo","bar"],"ads_id":"abc123"}`, w.Body.String())
}

func TestUpdateWithOwner(t *testing.T) {
	r := newRouter(t)

	body := `{"item":{"name":"Foo","price":42},"user":{"username":"dave","full_name":"Dave Grohl"},"importance":5}`
	w := do(r, http.MethodPut, "/items8/5", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"item_id": 5,
		"item": {"name":"Foo","description":null,"price":42,"tax":null},
		"user": {"username":"dave","full_name":"Dave Grohl"},
		"importance": 5
	}`, w.Body.String())

	resp := decodeErr(t, do(r, http.MethodPut, "/items8/5", `{"item":{"name":"Foo","price":0},"user":{"username":"dave"},"importance":0}`))
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, []string{"body", "item", "price"}, resp.Errors[0].Loc)
	assert.Equal(t, []string{"body", "importance"}, resp.Errors[1].Loc)
}
