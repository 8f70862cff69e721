package perfchart

import (
	"strings"
	"testing"
)

const widePortfolio = `date,AAPL_share,AAPL_open,AAPL_close,MSFT_share,MSFT_open,MSFT_close,cash,total_value,benchmark
2019-05-31,100,170,175,50,120,123,1000,24650,24650
2019-06-03,110,172,173,45,121,125,-80,24535,24400
`

func TestDecodeSummary(t *testing.T) {
	s, err := DecodeSummary(strings.NewReader(widePortfolio), map[string]string{"AAPL": "Apple, Inc."})
	if err != nil {
		t.Fatalf("DecodeSummary() error = %v", err)
	}
	if got, want := s.Initial.Date, NewDate(2019, 5, 31); got != want {
		t.Errorf("Initial.Date = %v, want %v", got, want)
	}
	latest := s.Latest
	if got, want := latest.Date, NewDate(2019, 6, 3); got != want {
		t.Errorf("Latest.Date = %v, want %v", got, want)
	}
	if len(latest.Holdings) != 2 {
		t.Fatalf("Latest.Holdings = %v, want 2 holdings", latest.Holdings)
	}
	aapl := latest.Holdings[0]
	if aapl.Symbol != "AAPL" || aapl.Name != "Apple, Inc." || aapl.Shares != 110 || aapl.Price != 173 {
		t.Errorf("Latest.Holdings[0] = %+v", aapl)
	}
	if got, want := aapl.Value(), 110.0*173; got != want {
		t.Errorf("Value() = %v, want %v", got, want)
	}
	if latest.Cash != -80 || latest.Total != 24535 {
		t.Errorf("Latest cash/total = %v/%v, want -80/24535", latest.Cash, latest.Total)
	}
}

func TestDecodeSummary_Empty(t *testing.T) {
	if _, err := DecodeSummary(strings.NewReader("date,cash,total_value,benchmark\n"), nil); err == nil {
		t.Errorf("DecodeSummary() of an empty table succeeded")
	}
}
