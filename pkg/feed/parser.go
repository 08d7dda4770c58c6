package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradekit/matching-engine/pkg/orderbook"
)

// ErrMalformed wraps every parse rejection so callers can filter the
// whole class with errors.Is.
var ErrMalformed = errors.New("malformed command")

// Parser decodes the delimited text feed:
//
//	A,<epoch-ms>,<orderID>,<B|S>,<price>,<qty>,<trader>
//	C,<epoch-ms>,<orderID>
//
// Prices arrive as decimals and are carried as such; conversion to
// integer ticks happens at the session boundary.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) ParseLine(line string) (*Command, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if len(fields) == 0 || fields[0] == "" {
		return nil, fmt.Errorf("%w: empty line", ErrMalformed)
	}

	switch fields[0] {
	case "A":
		return p.parseAdd(fields)
	case "C":
		return p.parseCancel(fields)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformed, fields[0])
	}
}

func (p *Parser) parseAdd(fields []string) (*Command, error) {
	if len(fields) != 7 {
		return nil, fmt.Errorf("%w: add wants 7 fields, got %d", ErrMalformed, len(fields))
	}

	ts, err := parseTimestamp(fields[1])
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: order id %q", ErrMalformed, fields[2])
	}

	var side orderbook.Side
	switch fields[3] {
	case "B":
		side = orderbook.Buy
	case "S":
		side = orderbook.Sell
	default:
		return nil, fmt.Errorf("%w: side marker %q", ErrMalformed, fields[3])
	}

	price, err := decimal.NewFromString(fields[4])
	if err != nil || price.Sign() <= 0 {
		return nil, fmt.Errorf("%w: price %q", ErrMalformed, fields[4])
	}
	qty, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil || qty <= 0 {
		return nil, fmt.Errorf("%w: quantity %q", ErrMalformed, fields[5])
	}
	if fields[6] == "" {
		return nil, fmt.Errorf("%w: missing trader tag", ErrMalformed)
	}

	return &Command{
		Kind:      KindAdd,
		Timestamp: ts,
		OrderID:   id,
		Side:      side,
		Price:     price,
		Qty:       qty,
		Trader:    fields[6],
	}, nil
}

func (p *Parser) parseCancel(fields []string) (*Command, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: cancel wants 3 fields, got %d", ErrMalformed, len(fields))
	}

	ts, err := parseTimestamp(fields[1])
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: order id %q", ErrMalformed, fields[2])
	}

	return &Command{Kind: KindCancel, Timestamp: ts, OrderID: id}, nil
}

func parseTimestamp(field string) (time.Time, error) {
	ms, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", ErrMalformed, field)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// Run streams commands from r into fn until EOF or ctx cancellation.
// Blank lines and '#' comments are skipped; malformed lines are returned
// to the caller through onErr and do not stop the stream.
func (p *Parser) Run(ctx context.Context, r io.Reader, fn func(*Command) error, onErr func(line string, err error)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := p.ParseLine(line)
		if err != nil {
			if onErr != nil {
				onErr(line, err)
			}
			continue
		}
		if err := fn(cmd); err != nil {
			return err
		}
	}
	return scanner.Err()
}
