package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	machine "auctionhouse/internal/auctionMachine"
	views "auctionhouse/internal/auctionViews"
	ledger "auctionhouse/internal/bidLedger"
	"auctionhouse/internal/clock"
	"auctionhouse/internal/fanout"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter wires the full stack on an in-memory store, seeding the
// given users, for integration testing. The fan-out hub is returned so tests
// can subscribe to live events directly.
func SetupTestRouter(users ...model.User) (*gin.Engine, *fanout.Hub) {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	for _, u := range users {
		store.SaveUser(u)
	}

	clk := clock.NewSystem()
	hub := fanout.NewHub()

	bidLedger := ledger.NewBidLedger(store, clk, hub)
	auctionMachine := machine.NewAuctionMachine(store, clk, hub)
	viewBuilder := views.NewBuilder(store)

	router := server.SetupRouter(bidLedger, auctionMachine, viewBuilder, server.NewLiveFeedHandler(hub))
	return router, hub
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope. For 2xx responses the data payload is returned.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				return data, w
			}
		}
	}

	return resp, w
}
