package esios

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablomv/esios-mcp/internal/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := New(Options{
		BaseURL: srv.URL,
		Token:   "test-token",
		HTTP:    srv.Client(),
	})
	return client, srv
}

func testRange(t *testing.T) models.DateRange {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", "2024-01-02")
	require.NoError(t, err)
	return models.DateRange{Start: start, End: end}
}

func TestSearchIndicatorsPreservesOrder(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/indicators", r.URL.Path)
		assert.Equal(t, "demand", r.URL.Query().Get("text"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"indicators":[
			{"id":1293,"name":"Real demand","short_name":"Demand","description":"Real-time demand"},
			{"id":600,"name":"Demand forecast","short_name":"Forecast","description":"Daily forecast"}
		]}`)
	})
	defer srv.Close()

	indicators, err := client.SearchIndicators(context.Background(), "demand")
	require.NoError(t, err)
	require.Len(t, indicators, 2)
	assert.Equal(t, 1293, indicators[0].ID)
	assert.Equal(t, "Real demand", indicators[0].Name)
	assert.Equal(t, 600, indicators[1].ID)
	assert.Equal(t, "Daily forecast", indicators[1].Description)
}

func TestSearchIndicatorsEmptyResult(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"indicators":[]}`)
	})
	defer srv.Close()

	indicators, err := client.SearchIndicators(context.Background(), "no such thing")
	require.NoError(t, err)
	assert.NotNil(t, indicators)
	assert.Empty(t, indicators)
}

func TestGetIndicatorDataChronologicalOrder(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/indicators/600", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2024-01-01T00:00:00Z", q.Get("start_date"))
		assert.Equal(t, "2024-01-02T00:00:00Z", q.Get("end_date"))
		assert.Equal(t, "hour", q.Get("time_trunc"))
		assert.Equal(t, "sum", q.Get("time_agg"))

		fmt.Fprint(w, `{"indicator":{"name":"Demand forecast","values":[
			{"datetime":"2024-01-01T00:00:00Z","value":28500.5,"geo_id":3,"geo_name":"España"},
			{"datetime":"2024-01-01T01:00:00Z","value":27100.0,"geo_id":3,"geo_name":"España"},
			{"datetime":"2024-01-01T02:00:00Z","value":26650.25,"geo_id":3,"geo_name":"España"}
		]}}`)
	})
	defer srv.Close()

	points, err := client.GetIndicatorData(context.Background(), 600, DataRequest{
		Range:     testRange(t),
		TimeTrunc: "hour",
		TimeAgg:   "sum",
	})
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 28500.5, points[0].Value)
	assert.Equal(t, "España", points[0].GeoName)
	assert.True(t, points[0].Datetime.Before(points[1].Datetime))
	assert.True(t, points[1].Datetime.Before(points[2].Datetime))
}

func TestGetIndicatorDataNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.GetIndicatorData(context.Background(), 99999, DataRequest{Range: testRange(t)})
	require.Error(t, err)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, 99999, nfErr.ID)
}

func TestGetIndicatorDataRejectedRange(t *testing.T) {
	const detail = "date range exceeds the maximum allowed span"
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, detail)
	})
	defer srv.Close()

	_, err := client.GetIndicatorData(context.Background(), 600, DataRequest{Range: testRange(t)})
	require.Error(t, err)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Equal(t, detail, reqErr.Message)
}

func TestGetIndicatorDataRejectedJSONBody(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"errors":[{"title":"Invalid date","detail":"start_date is outside available history"}]}`)
	})
	defer srv.Close()

	_, err := client.GetIndicatorData(context.Background(), 600, DataRequest{Range: testRange(t)})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "start_date is outside available history", reqErr.Message)
}

func TestServerErrorIsTransportError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := client.SearchIndicators(context.Background(), "demand")
	require.Error(t, err)
	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, http.StatusInternalServerError, trErr.Status)
}

func TestConnectionFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New(Options{BaseURL: url, Token: "test-token"})
	_, err := client.SearchIndicators(context.Background(), "demand")
	require.Error(t, err)
	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
	assert.Zero(t, trErr.Status)
}

func TestNoRetryOnFailure(t *testing.T) {
	var calls int
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := client.SearchIndicators(context.Background(), "demand")
	require.Error(t, err)
	assert.Equal(t, 1, calls, "each call must map to exactly one upstream attempt")
}
