package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recreation-microservice/internal/config"
	httpDelivery "github.com/recreation-microservice/internal/delivery/http"
	"github.com/recreation-microservice/internal/delivery/http/handler"
	apperrors "github.com/recreation-microservice/internal/pkg/errors"
	"github.com/recreation-microservice/internal/usecase/dto"
)

type fakeResourceService struct {
	gotSizes  []string
	gotUpdate dto.UpdateActivitiesRequest
	detailErr error
}

func (f *fakeResourceService) GetDetail(_ context.Context, id string, sizes []string) (*dto.RecreationResourceDetail, error) {
	f.gotSizes = sizes
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return &dto.RecreationResourceDetail{RecResourceID: id, RecResourceType: "Recreation Site"}, nil
}

func (f *fakeResourceService) GetGeoJSON(_ context.Context, id string) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{-120, 50}))
	return fc, nil
}

func (f *fakeResourceService) UpdateActivities(_ context.Context, id string, req dto.UpdateActivitiesRequest) (*dto.UpdateActivitiesResponse, error) {
	f.gotUpdate = req
	return &dto.UpdateActivitiesResponse{RecResourceID: id, ActivityCodes: req.ActivityCodes}, nil
}

type healthy struct{ err error }

func (h healthy) Health(context.Context) error { return h.err }

func newTestServer(svc handler.RecreationResourceService, dbErr error) *httpDelivery.Server {
	logger := zap.NewNop()
	cfg := &config.Config{}
	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewHealthHandler(map[string]handler.HealthChecker{"postgres": healthy{err: dbErr}}, logger),
		handler.NewRecreationResourceHandler(svc, logger),
	)
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestServer_GetDetail(t *testing.T) {
	svc := &fakeResourceService{}
	srv := newTestServer(svc, nil)

	req := httptest.NewRequest("GET", "/api/v1/recreation-resource/REC203239?imageSizeCodes=original,%20pre,,", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"original", "pre"}, svc.gotSizes)

	body := decode(t, resp.Body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "REC203239", data["rec_resource_id"])
}

func TestServer_GetDetail_NoSizeCodes(t *testing.T) {
	svc := &fakeResourceService{}
	srv := newTestServer(svc, nil)

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/api/v1/recreation-resource/REC1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, svc.gotSizes)
}

func TestServer_GetDetail_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "not found", err: apperrors.ErrRecResourceNotFound, wantCode: 404, wantErr: "REC_RESOURCE_NOT_FOUND"},
		{name: "invalid id", err: apperrors.ErrInvalidRecResourceID, wantCode: 400, wantErr: "INVALID_REC_RESOURCE_ID"},
		{name: "malformed", err: apperrors.ErrMalformedResource, wantCode: 500, wantErr: "MALFORMED_RESOURCE"},
		{name: "unknown", err: errors.New("boom"), wantCode: 500, wantErr: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&fakeResourceService{detailErr: tt.err}, nil)

			resp, err := srv.App().Test(httptest.NewRequest("GET", "/api/v1/recreation-resource/REC1", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			body := decode(t, resp.Body)
			assert.Equal(t, tt.wantErr, body["error"].(map[string]interface{})["code"])
		})
	}
}

func TestServer_GetGeoJSON(t *testing.T) {
	srv := newTestServer(&fakeResourceService{}, nil)

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/api/v1/recreation-resource/REC1/geojson", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))
	body := decode(t, resp.Body)
	assert.Equal(t, "FeatureCollection", body["type"])
}

func TestServer_UpdateActivities(t *testing.T) {
	svc := &fakeResourceService{}
	srv := newTestServer(svc, nil)

	req := httptest.NewRequest("PUT", "/api/v1/admin/recreation-resource/REC1/activities",
		strings.NewReader(`{"activity_codes":[1,9]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []int{1, 9}, svc.gotUpdate.ActivityCodes)
}

func TestServer_UpdateActivities_InvalidBody(t *testing.T) {
	srv := newTestServer(&fakeResourceService{}, nil)

	req := httptest.NewRequest("PUT", "/api/v1/admin/recreation-resource/REC1/activities",
		strings.NewReader(`{"activity_codes":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}

func TestServer_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		resp, err := newTestServer(&fakeResourceService{}, nil).App().
			Test(httptest.NewRequest("GET", "/api/v1/health", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("dependency down", func(t *testing.T) {
		resp, err := newTestServer(&fakeResourceService{}, errors.New("down")).App().
			Test(httptest.NewRequest("GET", "/api/v1/health", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, 503, resp.StatusCode)
		body := decode(t, resp.Body)
		assert.Equal(t, "unhealthy", body["status"])
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	resp, err := newTestServer(&fakeResourceService{}, nil).App().
		Test(httptest.NewRequest("GET", "/api/v1/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, "HTTP_ERROR", body["error"].(map[string]interface{})["code"])
}
