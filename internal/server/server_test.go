package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/cpdash-go/internal/config"
	"github.com/ukaji3/cpdash-go/internal/logging"
	"github.com/ukaji3/cpdash-go/pkg/cpdash"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/view"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", cpdash.DefaultSheet); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	col := 1
	for _, slot := range view.DefaultSlots(models.ModeNamedColumns) {
		for r := 0; r <= 25; r++ {
			xCell, _ := excelize.CoordinatesToCellName(col, r+1)
			yCell, _ := excelize.CoordinatesToCellName(col+1, r+1)
			if r == 0 {
				f.SetCellValue(cpdash.DefaultSheet, xCell, slot.X)
				f.SetCellValue(cpdash.DefaultSheet, yCell, slot.Y)
				continue
			}
			f.SetCellValue(cpdash.DefaultSheet, xCell, "Dealer "+slot.ID+"-"+string(rune('A'+r-1)))
			f.SetCellValue(cpdash.DefaultSheet, yCell, r*1_000_000)
		}
		col += 2
	}
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	d, err := cpdash.Open(path, cpdash.DefaultOptions())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	s, err := New(d, config.Server{Host: "127.0.0.1", Port: 0}, logging.NewLogger(io.Discard, "error", "json"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()
	if v != nil {
		if err := json.NewDecoder(res.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return res.StatusCode
}

func postEvent(t *testing.T, ts *httptest.Server, req eventRequest) (int, eventResponse) {
	t.Helper()
	body, _ := json.Marshal(req)
	res, err := http.Post(ts.URL+"/api/events", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/events: %v", err)
	}
	defer res.Body.Close()
	var out eventResponse
	if res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			t.Fatalf("decode event response: %v", err)
		}
	}
	return res.StatusCode, out
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	page := string(body)
	for _, want := range []string{"Dashboard Summary 6/30/24", `id="btn-fig1"`, "Enlarge Graph 5", `id="close"`, `id="modal"`} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestFigures(t *testing.T) {
	ts := newTestServer(t)

	var all map[string]models.Figure
	if status := getJSON(t, ts.URL+"/api/figures", &all); status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 figures, got %d", len(all))
	}

	var fig models.Figure
	if status := getJSON(t, ts.URL+"/api/figures/fig2", &fig); status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if fig.Layout.BarMode != "group" || len(fig.Data[0].X) != 25 {
		t.Errorf("Unexpected figure %+v", fig.Layout)
	}

	if status := getJSON(t, ts.URL+"/api/figures/fig9", nil); status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
}

func TestTables(t *testing.T) {
	ts := newTestServer(t)

	var page models.TablePage
	if status := getJSON(t, ts.URL+"/api/tables/fig3?page=2", &page); status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if page.Page != 2 || len(page.Rows) != 5 || page.PageCount != 3 {
		t.Errorf("Unexpected page: page=%d rows=%d count=%d", page.Page, len(page.Rows), page.PageCount)
	}
	if page.Columns[0] != "Name_1" || page.Columns[1] != "Total Trading Volume" {
		t.Errorf("Unexpected columns %v", page.Columns)
	}
	if page.Rows[4]["Total Trading Volume"] != 25.0 {
		t.Errorf("Expected 25.0 in last row, got %v", page.Rows[4])
	}

	if status := getJSON(t, ts.URL+"/api/tables/fig3?page=x", nil); status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", status)
	}
	if status := getJSON(t, ts.URL+"/api/tables/nope", nil); status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
}

func TestEvents(t *testing.T) {
	ts := newTestServer(t)

	status, out := postEvent(t, ts, eventRequest{})
	if status != http.StatusOK || out.State.IsOpen || out.Update.Figure != nil || out.Update.Table != nil {
		t.Errorf("Initial event: status %d, %+v", status, out)
	}

	status, out = postEvent(t, ts, eventRequest{Triggered: []string{"btn-fig3"}})
	if status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if !out.State.IsOpen || out.State.Chart != "fig3" || out.Update.Figure == nil {
		t.Errorf("Expected fig3 open, got %+v", out.State)
	}
	if out.Update.Table == nil || len(out.Update.Table.Rows) != 10 {
		t.Errorf("Expected first table page of 10 rows, got %+v", out.Update.Table)
	}

	status, out = postEvent(t, ts, eventRequest{Triggered: []string{"close"}, State: out.State})
	if status != http.StatusOK || out.State.IsOpen {
		t.Errorf("Expected close, got status %d %+v", status, out.State)
	}
	_, out = postEvent(t, ts, eventRequest{Triggered: []string{"close"}, State: out.State})
	if !out.State.IsOpen {
		t.Error("Expected close on a closed modal to reopen it")
	}

	if status, _ := postEvent(t, ts, eventRequest{Triggered: []string{"btn-fig7"}}); status != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown trigger, got %d", status)
	}

	res, err := http.Post(ts.URL+"/api/events", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", res.StatusCode)
	}
}

func TestChartImage(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/charts/fig1.png?width=400&height=300")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || res.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("status %d type %q", res.StatusCode, res.Header.Get("Content-Type"))
	}
	if !bytes.HasPrefix(body, []byte("\x89PNG")) {
		t.Error("Expected PNG body")
	}

	for url, want := range map[string]int{
		"/charts/fig1.gif":          http.StatusNotFound,
		"/charts/fig8.png":          http.StatusNotFound,
		"/charts/fig1.svg?width=-1": http.StatusBadRequest,
	} {
		if status := getJSON(t, ts.URL+url, nil); status != want {
			t.Errorf("%s: expected %d, got %d", url, want, status)
		}
	}
}

func TestWebsocketSession(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send := func(triggered ...string) wsMessage {
		t.Helper()
		if err := conn.WriteJSON(eventRequest{Triggered: triggered}); err != nil {
			t.Fatalf("write: %v", err)
		}
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		return msg
	}

	msg := send("btn-fig2")
	if msg.State == nil || !msg.State.IsOpen || msg.State.Chart != "fig2" {
		t.Fatalf("Expected fig2 open, got %+v", msg)
	}
	if msg.Update.Table == nil || msg.Update.Table.Chart != "fig2" {
		t.Errorf("Expected fig2 table, got %+v", msg.Update.Table)
	}

	// The session remembers the open modal, so close closes it.
	msg = send("close")
	if msg.State.IsOpen {
		t.Error("Expected modal closed")
	}

	msg = send("bogus")
	if msg.Error == "" || msg.State != nil {
		t.Errorf("Expected error reply, got %+v", msg)
	}

	// Errors leave the session state untouched.
	msg = send("close")
	if !msg.State.IsOpen || msg.State.Chart != "fig2" {
		t.Errorf("Expected reopen on fig2, got %+v", msg.State)
	}
}
