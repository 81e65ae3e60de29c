package ticket

import (
	"math/big"
	"testing"
)

func TestDisplayPriceToWei(t *testing.T) {
	cases := []struct {
		display int64
		wei     string
	}{
		{1, "100000000000000"},
		{50, "5000000000000000"},
		{10000, "1000000000000000000"}, // 10000 display units = 1 ether
	}

	for _, tc := range cases {
		got := DisplayPriceToWei(tc.display)
		want, _ := new(big.Int).SetString(tc.wei, 10)
		if got.Cmp(want) != 0 {
			t.Errorf("DisplayPriceToWei(%d) = %s, want %s", tc.display, got, want)
		}
	}
}

func TestDisplayPriceToEther(t *testing.T) {
	if got := DisplayPriceToEther(10000); got != "1" {
		t.Errorf("Expected 10000 display units to be 1 ether, got %s", got)
	}
	if got := DisplayPriceToEther(50); got != "0.005" {
		t.Errorf("Expected 50 display units to be 0.005 ether, got %s", got)
	}
}
