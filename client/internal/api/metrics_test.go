package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFetch_CountsOutcomes(t *testing.T) {
	const op = "outcome counting"
	cases := []struct {
		status  int
		body    string
		outcome string
	}{
		{http.StatusOK, `[{"a": 1}]`, outcomeOK},
		{http.StatusOK, `{bad json`, outcomeDecode},
		{http.StatusOK, `null`, outcomeDecode},
		{http.StatusBadGateway, `oops`, outcomeHTTPStatus},
	}
	for _, tc := range cases {
		before := testutil.ToFloat64(requestsTotal.WithLabelValues(op, tc.outcome))
		okBefore := testutil.ToFloat64(requestsTotal.WithLabelValues(op, outcomeOK))
		srv, _ := serveJSON(t, tc.status, tc.body)
		_, _ = getRecords(context.Background(), srv.Client(), op, srv.URL)

		if got := testutil.ToFloat64(requestsTotal.WithLabelValues(op, tc.outcome)); got != before+1 {
			t.Fatalf("body %q: %s count = %v, want %v", tc.body, tc.outcome, got, before+1)
		}
		if tc.outcome != outcomeOK {
			if got := testutil.ToFloat64(requestsTotal.WithLabelValues(op, outcomeOK)); got != okBefore {
				t.Fatalf("body %q: also counted as ok", tc.body)
			}
		}
	}

	before := testutil.ToFloat64(requestsTotal.WithLabelValues(op, outcomeTransport))
	_, _ = getRecords(context.Background(), &http.Client{Transport: &errRT{}}, op, "http://example.com")
	if got := testutil.ToFloat64(requestsTotal.WithLabelValues(op, outcomeTransport)); got != before+1 {
		t.Fatalf("transport count = %v, want %v", got, before+1)
	}
}

func TestGetRaceList_BadBucketCountedAsDecodeError(t *testing.T) {
	before := testutil.ToFloat64(requestsTotal.WithLabelValues(opRaceList, outcomeDecode))
	srv, _ := serveJSON(t, http.StatusOK, `{"series_1": [], "series_2": {"x": 1}}`)
	if _, err := GetRaceList(context.Background(), srv.Client(), srv.URL, 2030); err == nil {
		t.Fatal("expected error for malformed series_2 bucket")
	}
	if got := testutil.ToFloat64(requestsTotal.WithLabelValues(opRaceList, outcomeDecode)); got != before+1 {
		t.Fatalf("decode count = %v, want %v", got, before+1)
	}
}
