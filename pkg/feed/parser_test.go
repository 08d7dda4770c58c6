package feed

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/matching-engine/pkg/orderbook"
)

func TestParseAdd(t *testing.T) {
	p := NewParser()

	cmd, err := p.ParseLine("A,1700000000000,42,B,100.25,10,ACME")
	require.NoError(t, err)

	assert.Equal(t, KindAdd, cmd.Kind)
	assert.Equal(t, uint64(42), cmd.OrderID)
	assert.Equal(t, orderbook.Buy, cmd.Side)
	assert.True(t, cmd.Price.Equal(decimal.RequireFromString("100.25")))
	assert.Equal(t, int64(10), cmd.Qty)
	assert.Equal(t, "ACME", cmd.Trader)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), cmd.Timestamp)
}

func TestParseCancel(t *testing.T) {
	p := NewParser()

	cmd, err := p.ParseLine("C,1700000000001,42")
	require.NoError(t, err)

	assert.Equal(t, KindCancel, cmd.Kind)
	assert.Equal(t, uint64(42), cmd.OrderID)
}

func TestParseWhitespaceTolerant(t *testing.T) {
	p := NewParser()

	cmd, err := p.ParseLine("A, 1700000000000, 7, S, 99.5, 3, HFT1")
	require.NoError(t, err)
	assert.Equal(t, orderbook.Sell, cmd.Side)
	assert.Equal(t, uint64(7), cmd.OrderID)
}

func TestParseRejectsMalformed(t *testing.T) {
	p := NewParser()

	lines := []string{
		"",                                  // empty
		"X,1,2",                             // unknown kind
		"A,1700000000000,42,B,100.25,10",    // missing trader
		"A,1700000000000,42,Q,100.25,10,T",  // unknown side marker
		"A,1700000000000,42,B,abc,10,T",     // non-numeric price
		"A,1700000000000,42,B,100.25,0,T",   // zero quantity
		"A,1700000000000,42,B,100.25,-5,T",  // negative quantity
		"A,1700000000000,42,B,-100,10,T",    // negative price
		"A,notatime,42,B,100.25,10,T",       // bad timestamp
		"A,1700000000000,nope,B,100.25,1,T", // bad order id
		"C,1700000000000",                   // cancel missing id
	}
	for _, line := range lines {
		_, err := p.ParseLine(line)
		assert.ErrorIs(t, err, ErrMalformed, "line %q", line)
	}
}

func TestRunStreamsAndSkips(t *testing.T) {
	p := NewParser()
	input := strings.Join([]string{
		"# demo feed",
		"A,1700000000000,1,B,100,5,ACME",
		"",
		"garbage line",
		"C,1700000000001,1",
	}, "\n")

	var got []*Command
	var bad []string
	err := p.Run(context.Background(), strings.NewReader(input),
		func(c *Command) error {
			got = append(got, c)
			return nil
		},
		func(line string, err error) {
			bad = append(bad, line)
		})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, KindAdd, got[0].Kind)
	assert.Equal(t, KindCancel, got[1].Kind)
	assert.Equal(t, []string{"garbage line"}, bad)
}

func TestRunStopsOnHandlerError(t *testing.T) {
	p := NewParser()
	sentinel := errors.New("stop")

	err := p.Run(context.Background(),
		strings.NewReader("A,1700000000000,1,B,100,5,ACME\nC,1700000000001,1\n"),
		func(c *Command) error { return sentinel },
		nil)

	assert.ErrorIs(t, err, sentinel)
}
