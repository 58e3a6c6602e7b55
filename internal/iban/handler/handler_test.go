package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ibanguard/internal/iban/handler/mocks"
	"ibanguard/internal/iban/models"
	"ibanguard/internal/iban/service"
	"ibanguard/internal/iban/store"
	dErrors "ibanguard/pkg/domain-errors"
	"ibanguard/pkg/testutil"
)

var checkedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.New(store.NewInMemoryCache(time.Minute), service.WithLogger(logger), service.WithBatchLimits(4, 2))
	require.NoError(t, err)

	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func TestHandleValidate(t *testing.T) {
	router := newRouter(t)

	t.Run("valid iban", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/iban/validate", map[string]string{"iban": "DE89 3704 0044 0532 0130 00"})
		req = testutil.WithRequestTime(testutil.WithRequestID(req, "req-1"), checkedAt)
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[ValidateResponse](t, rr)
		assert.True(t, resp.Valid)
		assert.Equal(t, "DE89 3704 0044 0532 0130 00", resp.Input)
		require.NotNil(t, resp.Details)
		assert.Equal(t, "37040044", resp.Details.BankCode)
		assert.Equal(t, "DE", resp.Details.Country.Code)
		assert.True(t, checkedAt.Equal(resp.CheckedAt))
	})

	t.Run("invalid iban is still 200", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/iban/validate", map[string]string{"iban": "DE88370400440532013000"})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[ValidateResponse](t, rr)
		assert.False(t, resp.Valid)
		assert.Equal(t, models.ReasonInvalidChecksum, resp.Reason)
		assert.Nil(t, resp.Details)
	})

	t.Run("missing iban", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/iban/validate", map[string]string{"iban": "   "})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	t.Run("malformed json", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/iban/validate", "{not json")
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func TestHandleValidateBatch(t *testing.T) {
	router := newRouter(t)

	t.Run("mixed batch", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/iban/validate/batch", map[string][]string{
			"ibans": {"GB82WEST12345698765432", "gb82 west 1234 5698 7654 32", "XX00", "NL91ABNA0417164300"},
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[BatchResponse](t, rr)
		require.Len(t, resp.Results, 3)
		assert.Equal(t, 2, resp.Valid)
		assert.Equal(t, 1, resp.Invalid)
		assert.Equal(t, "GB82WEST12345698765432", resp.Results[0].Input)
		assert.Equal(t, models.ReasonUnknownCountry, resp.Results[1].Reason)
		assert.Equal(t, "ABNA", resp.Results[2].Details.BankCode)
	})

	t.Run("too many items", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/iban/validate/batch", map[string][]string{
			"ibans": {"A", "B", "C", "D", "E"},
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	t.Run("empty list", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/iban/validate/batch", map[string][]string{"ibans": {}})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})
}

func TestHandleParse(t *testing.T) {
	router := newRouter(t)

	t.Run("valid iban", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/iban/cz6508000000192000145399", nil)
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[models.Details](t, rr)
		assert.Equal(t, "CZ6508000000192000145399", resp.IBAN)
		assert.Equal(t, "CZ65 0800 0000 1920 0014 5399", resp.PrintFormat)
		assert.Equal(t, "000019", resp.AccountPrefix)
		assert.Equal(t, "GIBACZPX", resp.Swift)
	})

	t.Run("invalid iban", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/iban/DE1234", nil)
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		resp := testutil.UnmarshalResponse[map[string]string](t, rr)
		assert.Equal(t, string(dErrors.CodeValidation), (*resp)["error"])
		assert.Equal(t, models.ReasonLengthMismatch, (*resp)["error_description"])
	})
}

func TestHandleCountries(t *testing.T) {
	router := newRouter(t)

	t.Run("list all", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/iban/countries", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[CountriesResponse](t, rr)
		assert.Equal(t, len(resp.Countries), resp.Total)
		assert.Greater(t, resp.Total, 80)
	})

	t.Run("sepa only", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/iban/countries?sepa=true", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[CountriesResponse](t, rr)
		for _, c := range resp.Countries {
			assert.True(t, c.SEPA, c.Code)
		}
	})

	t.Run("bad sepa flag", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/iban/countries?sepa=maybe", nil))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	t.Run("single country", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/iban/countries/no", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[models.CountryDetails](t, rr)
		assert.Equal(t, "NO", resp.Code)
		assert.Equal(t, 15, resp.Length)
		assert.Equal(t, "NOkkbbbbccccccx", resp.Format)
	})

	t.Run("unknown country", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/iban/countries/US", nil))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})
}

// HandlerMockSuite covers failure paths that the real service cannot produce on demand.
type HandlerMockSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerMockSuite(t *testing.T) {
	suite.Run(t, new(HandlerMockSuite))
}

func (s *HandlerMockSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *HandlerMockSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerMockSuite) TestBatchTimeout() {
	s.service.EXPECT().ValidateBatch(gomock.Any(), []string{"DE89370400440532013000"}).
		Return(nil, dErrors.Wrap(context.DeadlineExceeded, dErrors.CodeTimeout, "batch validation cancelled"))

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/iban/validate/batch", map[string][]string{
		"ibans": {"DE89370400440532013000"},
	})
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusGatewayTimeout, string(dErrors.CodeTimeout))
}

func (s *HandlerMockSuite) TestParseInternalErrorHidesDescription() {
	s.service.EXPECT().Parse(gomock.Any(), "DE89370400440532013000").
		Return(nil, dErrors.New(dErrors.CodeInternal, "cache exploded"))

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/iban/DE89370400440532013000", nil))
	s.Equal(http.StatusInternalServerError, rr.Code)
	s.NotContains(rr.Body.String(), "cache exploded")
}

func (s *HandlerMockSuite) TestOversizedInputNeverReachesService() {
	long := make([]byte, maxInputLength+1)
	for i := range long {
		long[i] = '1'
	}

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/iban/validate", map[string]string{"iban": string(long)})
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeValidation))

	rr = testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/iban/"+string(long), nil))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
}

func (s *HandlerMockSuite) TestCountriesPassesFlag() {
	s.service.EXPECT().Countries(gomock.Any(), false).Return([]models.CountryDetails{{Code: "AD"}})

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/iban/countries?sepa=false", nil))
	s.Equal(http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[CountriesResponse](s.T(), rr)
	s.Equal(1, resp.Total)
}
