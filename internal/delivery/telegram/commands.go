package telegram

import (
	"errors"
	"strconv"
	"strings"
)

const HelpText = `Commands:
/price <asset> - current price in USD, EUR and RUB
/rates - popular assets at a glance
/exchange <from> <to> [amount] - convert between assets
/top [n] - largest assets by market cap (up to 50)
/history <asset> [days] - price summary over 1, 7, 30, 90 or 365 days
/market - global market stats
/feargreed - crypto fear and greed index
/search <query> - find an asset id

/portfolio - your holdings and their value
/add <asset> <quantity> - add to a holding
/remove <asset> - remove a holding

/favorites - your favorite assets with prices
/fav <asset> - add a favorite
/unfav <asset> - remove a favorite

/alert <asset> <price> <above|below> - notify me when the price crosses
/alerts - list your alerts
/delalert <n> - delete alert number n from /alerts

/balance - your balance
/deposit <amount> - top up your balance

Assets are CoinGecko ids (bitcoin) or tickers (BTC).
Example:
/alert btc 50000 above
/add eth 1.5
/exchange btc eth 0.1
`

var ErrInvalidArguments = errors.New("invalid arguments")

type AlertArgs struct {
	Asset     string
	Price     string
	Direction string
}

type HoldingArgs struct {
	Asset    string
	Quantity string
}

type HistoryArgs struct {
	Asset string
	Days  int
}

type ExchangeArgs struct {
	From   string
	To     string
	Amount string
}

func ParseAlertArgs(args string) (AlertArgs, error) {
	parts := strings.Fields(args)
	if len(parts) != 3 {
		return AlertArgs{}, ErrInvalidArguments
	}
	return AlertArgs{Asset: parts[0], Price: parts[1], Direction: parts[2]}, nil
}

func ParseHoldingArgs(args string) (HoldingArgs, error) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return HoldingArgs{}, ErrInvalidArguments
	}
	return HoldingArgs{Asset: parts[0], Quantity: parts[1]}, nil
}

// ParseExchangeArgs accepts "<from> <to>" or "<from> <to> <amount>".
func ParseExchangeArgs(args string) (ExchangeArgs, error) {
	parts := strings.Fields(args)
	switch len(parts) {
	case 2:
		return ExchangeArgs{From: parts[0], To: parts[1]}, nil
	case 3:
		return ExchangeArgs{From: parts[0], To: parts[1], Amount: parts[2]}, nil
	default:
		return ExchangeArgs{}, ErrInvalidArguments
	}
}

// ParseSingleArg returns the only argument, used for assets and amounts.
func ParseSingleArg(args string) (string, error) {
	parts := strings.Fields(args)
	if len(parts) != 1 {
		return "", ErrInvalidArguments
	}
	return parts[0], nil
}

// ParsePosition parses a 1-based list position.
func ParsePosition(args string) (int, error) {
	value, err := ParseSingleArg(args)
	if err != nil {
		return 0, err
	}
	position, err := strconv.Atoi(value)
	if err != nil || position < 1 {
		return 0, ErrInvalidArguments
	}
	return position, nil
}

// ParseCount parses an optional positive count. Zero means none was given.
func ParseCount(args string) (int, error) {
	parts := strings.Fields(args)
	switch len(parts) {
	case 0:
		return 0, nil
	case 1:
		count, err := strconv.Atoi(parts[0])
		if err != nil || count < 1 {
			return 0, ErrInvalidArguments
		}
		return count, nil
	default:
		return 0, ErrInvalidArguments
	}
}

// ParseHistoryArgs accepts "<asset>" or "<asset> <days>".
func ParseHistoryArgs(args string) (HistoryArgs, error) {
	parts := strings.Fields(args)
	switch len(parts) {
	case 1:
		return HistoryArgs{Asset: parts[0]}, nil
	case 2:
		days, err := strconv.Atoi(parts[1])
		if err != nil || days < 1 {
			return HistoryArgs{}, ErrInvalidArguments
		}
		return HistoryArgs{Asset: parts[0], Days: days}, nil
	default:
		return HistoryArgs{}, ErrInvalidArguments
	}
}

// ParseQuery joins the arguments into a search query.
func ParseQuery(args string) (string, error) {
	query := strings.Join(strings.Fields(args), " ")
	if query == "" {
		return "", ErrInvalidArguments
	}
	return query, nil
}
