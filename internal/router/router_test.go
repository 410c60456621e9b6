package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findmypet/internal/adapters/auth/token"
	"findmypet/internal/adapters/storage"
	"findmypet/internal/domain/shelters"
	"findmypet/internal/platform/metrics"
	"findmypet/internal/ports/media"
	"findmypet/internal/router"
)

// fakeMedia simula el gateway: CIDs secuenciales y URLs deterministas.
type fakeMedia struct {
	mu sync.Mutex
	n  int
}

func (m *fakeMedia) Upload(_ context.Context, f media.File) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("bafy-%d-%s", m.n, f.Name), nil
}

func (m *fakeMedia) SignedURL(_ context.Context, cid string, _ time.Duration) (string, error) {
	return "https://gw.test/files/" + cid + "?sig=1", nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	tokens, err := token.New(token.Config{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Metrics: metrics.New(),
		Stores:  storage.NewMemory(),
		Tokens:  tokens,
		Media:   &fakeMedia{},
	}))
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path, tok string, body io.Reader, contentType string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, baseURL+path, body)
	require.NoError(t, err)
	if tok != "" {
		req.Header.Set("Authorization", tok)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func doJSON(t *testing.T, baseURL, method, path, tok string, payload any) (int, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	return doReq(t, baseURL, method, path, tok, body, "application/json")
}

type filePart struct {
	field, name string
	data        []byte
}

func doMultipart(t *testing.T, baseURL, path, tok string, fields map[string]string, file *filePart) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile(file.field, file.name)
		require.NoError(t, err)
		_, err = fw.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return doReq(t, baseURL, http.MethodPost, path, tok, &buf, mw.FormDataContentType())
}

func signup(t *testing.T, baseURL string) (email, password, tok, userID string) {
	t.Helper()
	email = gofakeit.UUID()[:8] + "." + gofakeit.Email()
	password = gofakeit.Password(true, true, true, false, false, 12)

	st, body := doJSON(t, baseURL, http.MethodPost, "/create_user", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, st, string(body))

	st, body = doJSON(t, baseURL, http.MethodPost, "/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, st, string(body))

	var out struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return email, password, out.Token, out.UserID
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t)
	st, body := doReq(t, ts.URL, http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, _ = doReq(t, ts.URL, http.MethodGet, "/metrics", "", nil, "")
	assert.Equal(t, http.StatusOK, st)
}

func TestHTTP_PanicIsLoggedAndCounted(t *testing.T) {
	tokens, err := token.New(token.Config{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)

	h := router.NewRouter(router.Options{
		Metrics: metrics.New(),
		Stores:  storage.NewMemory(),
		Tokens:  tokens,
		Media:   &fakeMedia{},
	})
	mux, ok := h.(chi.Router)
	require.True(t, ok)
	mux.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	st, body := doReq(t, ts.URL, http.MethodGet, "/boom", "", nil, "")
	assert.Equal(t, http.StatusInternalServerError, st)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, string(body))

	st, body = doReq(t, ts.URL, http.MethodGet, "/metrics", "", nil, "")
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `findmypet_http_requests_total{method="GET",route="/boom",status="500"} 1`)
}

func TestHTTP_Auth(t *testing.T) {
	ts := newServer(t)
	email, password, _, _ := signup(t, ts.URL)

	st, body := doJSON(t, ts.URL, http.MethodPost, "/create_user", "", map[string]string{"email": email, "password": "other"})
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"message":"Email already exists"}`, string(body))

	st, body = doJSON(t, ts.URL, http.MethodPost, "/create_user", "", map[string]string{"email": email})
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"message":"Email and password are required"}`, string(body))

	st, body = doJSON(t, ts.URL, http.MethodPost, "/login", "", map[string]string{"email": email, "password": password + "x"})
	assert.Equal(t, http.StatusUnauthorized, st)
	assert.JSONEq(t, `{"message":"Invalid email or password"}`, string(body))

	st, _ = doJSON(t, ts.URL, http.MethodPost, "/login", "", map[string]string{"email": "nobody@example.com", "password": password})
	assert.Equal(t, http.StatusUnauthorized, st)
}

func TestHTTP_MissingPets_EndToEnd(t *testing.T) {
	ts := newServer(t)
	_, _, ownerTok, ownerID := signup(t, ts.URL)
	_, _, otherTok, _ := signup(t, ts.URL)

	fields := map[string]string{
		"name":              "Milo",
		"breed":             "Beagle",
		"color":             "brown",
		"lastKnownLocation": `{"latitude":40.7,"longitude":-74}`,
	}
	img := &filePart{field: "image", name: "milo.jpg", data: []byte("jpeg-bytes")}

	// sin token / token inválido
	st, body := doMultipart(t, ts.URL, "/register-missing-pet", "", fields, img)
	assert.Equal(t, http.StatusForbidden, st)
	assert.JSONEq(t, `{"message":"No token provided"}`, string(body))

	st, body = doMultipart(t, ts.URL, "/register-missing-pet", "garbage", fields, img)
	assert.Equal(t, http.StatusUnauthorized, st)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, string(body))

	// sin imagen: no se escribe nada
	st, body = doMultipart(t, ts.URL, "/register-missing-pet", ownerTok, fields, nil)
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"message":"Image file is required"}`, string(body))

	// ubicación mal formada
	bad := map[string]string{"lastKnownLocation": "{not json"}
	st, _ = doMultipart(t, ts.URL, "/register-missing-pet", ownerTok, bad, img)
	assert.Equal(t, http.StatusBadRequest, st)

	st, body = doMultipart(t, ts.URL, "/register-missing-pet", "Bearer "+ownerTok, fields, img)
	require.Equal(t, http.StatusCreated, st, string(body))
	var reg struct {
		Message  string `json:"message"`
		PetID    string `json:"petId"`
		ImageCID string `json:"imageCid"`
	}
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "Missing pet registered successfully", reg.Message)
	assert.Equal(t, "bafy-1-milo.jpg", reg.ImageCID)

	// listado público: sin userId, con imageUrl
	st, body = doReq(t, ts.URL, http.MethodGet, "/missing-pets", "", nil, "")
	require.Equal(t, http.StatusOK, st)
	var public struct {
		Message string           `json:"message"`
		Pets    []map[string]any `json:"pets"`
	}
	require.NoError(t, json.Unmarshal(body, &public))
	assert.Equal(t, "All missing pets retrieved successfully", public.Message)
	require.Len(t, public.Pets, 1)
	assert.NotContains(t, public.Pets[0], "userId")
	assert.Equal(t, reg.PetID, public.Pets[0]["_id"])
	assert.Equal(t, reg.ImageCID, public.Pets[0]["image"])
	assert.Equal(t, "https://gw.test/files/bafy-1-milo.jpg?sig=1", public.Pets[0]["imageUrl"])
	assert.Equal(t, "missing", public.Pets[0]["status"])

	// listado del dueño: con userId; el otro usuario no ve nada
	st, body = doReq(t, ts.URL, http.MethodGet, "/user-missing-pets", ownerTok, nil, "")
	require.Equal(t, http.StatusOK, st)
	var owned struct {
		Pets []map[string]any `json:"pets"`
	}
	require.NoError(t, json.Unmarshal(body, &owned))
	require.Len(t, owned.Pets, 1)
	assert.Equal(t, ownerID, owned.Pets[0]["userId"])

	st, body = doReq(t, ts.URL, http.MethodGet, "/user-missing-pets", otherTok, nil, "")
	require.Equal(t, http.StatusOK, st)
	require.NoError(t, json.Unmarshal(body, &owned))
	assert.Empty(t, owned.Pets)

	// transición de estado
	reunite := "/missing-pets/" + reg.PetID + "/reunited"
	st, _ = doReq(t, ts.URL, http.MethodPost, reunite, otherTok, nil, "")
	assert.Equal(t, http.StatusForbidden, st)

	st, _ = doReq(t, ts.URL, http.MethodPost, "/missing-pets/nope/reunited", ownerTok, nil, "")
	assert.Equal(t, http.StatusNotFound, st)

	st, body = doReq(t, ts.URL, http.MethodPost, reunite, ownerTok, nil, "")
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Contains(t, string(body), `"status":"reunited"`)

	st, _ = doReq(t, ts.URL, http.MethodPost, reunite, ownerTok, nil, "")
	assert.Equal(t, http.StatusConflict, st)

	// historial
	st, body = doReq(t, ts.URL, http.MethodGet, "/pets/"+reg.PetID+"/events", "", nil, "")
	require.Equal(t, http.StatusOK, st)
	var hist struct {
		Events []struct {
			Type  string         `json:"type"`
			Actor map[string]any `json:"actor"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(body, &hist))
	require.Len(t, hist.Events, 2)
	assert.Equal(t, "REGISTERED", hist.Events[0].Type)
	assert.Equal(t, "REUNITED", hist.Events[1].Type)
	assert.Equal(t, "OWNER_USER", hist.Events[1].Actor["type"])

	// el historial es público: no debe permitir ligar la mascota con su dueño
	for _, e := range hist.Events {
		assert.NotContains(t, e.Actor, "id")
	}
	assert.NotContains(t, string(body), ownerID)
}

func TestHTTP_FoundPets_EndToEnd(t *testing.T) {
	ts := newServer(t)
	_, _, tok, userID := signup(t, ts.URL)

	pic := &filePart{field: "picture", name: "cat.png", data: []byte("png-bytes")}

	st, body := doMultipart(t, ts.URL, "/register-found-pet", "", map[string]string{"date": "2026-05-01"}, pic)
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"message":"Location, date, and shelter are required fields"}`, string(body))

	fields := map[string]string{
		"location": `{"latitude":1,"longitude":2}`,
		"date":     "2026-05-01",
		"shelter":  shelters.DefaultShelter.Name,
	}
	st, body = doMultipart(t, ts.URL, "/register-found-pet", "", fields, nil)
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"message":"Picture file is required"}`, string(body))

	st, body = doMultipart(t, ts.URL, "/register-found-pet", "", fields, pic)
	require.Equal(t, http.StatusCreated, st, string(body))
	var reg struct {
		PetID      string `json:"petId"`
		PictureCID string `json:"pictureCid"`
	}
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "bafy-1-cat.png", reg.PictureCID)

	st, body = doReq(t, ts.URL, http.MethodGet, "/found-pets", "", nil, "")
	require.Equal(t, http.StatusOK, st)
	var list struct {
		Message string `json:"message"`
		Pets    []struct {
			ID          string  `json:"_id"`
			PictureURL  *string `json:"pictureUrl"`
			ShelterInfo *struct {
				Name  string `json:"name"`
				Phone string `json:"phone"`
			} `json:"shelterInfo"`
		} `json:"pets"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, "All found pets retrieved successfully", list.Message)
	require.Len(t, list.Pets, 1)
	require.NotNil(t, list.Pets[0].PictureURL)
	require.NotNil(t, list.Pets[0].ShelterInfo)
	assert.Equal(t, shelters.DefaultShelter.Phone, list.Pets[0].ShelterInfo.Phone)

	claim := "/found-pets/" + reg.PetID + "/claim"
	st, _ = doReq(t, ts.URL, http.MethodPost, claim, "", nil, "")
	assert.Equal(t, http.StatusForbidden, st)

	st, body = doReq(t, ts.URL, http.MethodPost, claim, tok, nil, "")
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Contains(t, string(body), `"claimedBy":"`+userID+`"`)

	st, _ = doReq(t, ts.URL, http.MethodPost, claim, tok, nil, "")
	assert.Equal(t, http.StatusConflict, st)

	st, _ = doReq(t, ts.URL, http.MethodPost, "/found-pets/nope/claim", tok, nil, "")
	assert.Equal(t, http.StatusNotFound, st)

	// el historial público no expone a quien reclamó
	st, body = doReq(t, ts.URL, http.MethodGet, "/pets/"+reg.PetID+"/events", "", nil, "")
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"CLAIMED"`)
	assert.NotContains(t, string(body), userID)

	// ya reclamada: sale del listado
	st, body = doReq(t, ts.URL, http.MethodGet, "/found-pets", "", nil, "")
	require.Equal(t, http.StatusOK, st)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Empty(t, list.Pets)
}

func TestHTTP_Shelters(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, http.MethodGet, "/shelters", "", nil, "")
	require.Equal(t, http.StatusOK, st)
	var list struct {
		Shelters []struct {
			ID   string `json:"_id"`
			Name string `json:"name"`
		} `json:"shelters"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Shelters, 1)
	assert.Equal(t, shelters.DefaultShelter.Name, list.Shelters[0].Name)

	// repetir la lectura no siembra de nuevo
	st, body = doReq(t, ts.URL, http.MethodGet, "/shelters", "", nil, "")
	require.Equal(t, http.StatusOK, st)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list.Shelters, 1)

	st, body = doReq(t, ts.URL, http.MethodGet, "/shelter/"+list.Shelters[0].ID, "", nil, "")
	require.Equal(t, http.StatusOK, st)
	var info map[string]any
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, shelters.DefaultShelter.Website, info["website"])
	assert.NotContains(t, info, "_id")

	st, body = doReq(t, ts.URL, http.MethodGet, "/shelter/does-not-exist", "", nil, "")
	assert.Equal(t, http.StatusNotFound, st)
	assert.JSONEq(t, `{"message":"Shelter not found"}`, string(body))

	st, _ = doReq(t, ts.URL, http.MethodGet, "/api/shelters?lat=abc&lng=1", "", nil, "")
	assert.Equal(t, http.StatusBadRequest, st)

	// sin proveedor configurado
	st, _ = doReq(t, ts.URL, http.MethodGet, "/api/shelters?lat=1&lng=1", "", nil, "")
	assert.Equal(t, http.StatusInternalServerError, st)
}

func TestHTTP_Predict_NotConfigured(t *testing.T) {
	ts := newServer(t)
	st, _ := doMultipart(t, ts.URL, "/predict", "", nil, &filePart{field: "file", name: "dog.jpg", data: []byte("x")})
	assert.Equal(t, http.StatusServiceUnavailable, st)
}
