package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"quentinhas/model"
)

// Items are stored in the sheet as "[2x] Frango assado, [1x] Isca". The
// separator between quantity and name is "] ", so names must not contain it.
const itemSeparator = "] "

var tokenStart = regexp.MustCompile(`^(\[|\d+\s*x\]\s)`)

// TokenError describes an item token that does not follow the "[<qty>x] <name>" shape.
type TokenError struct {
	Token string
	Err   error
}

func (e TokenError) Error() string {
	return fmt.Sprintf("item inválido %q: %v", e.Token, e.Err)
}

func (e TokenError) Unwrap() error { return e.Err }

func EncodeItem(line model.ItemLine) string {
	return fmt.Sprintf("[%dx] %s", line.Qty, line.Name)
}

func EncodeItems(lines []model.ItemLine) string {
	tokens := make([]string, 0, len(lines))
	for _, line := range lines {
		tokens = append(tokens, EncodeItem(line))
	}
	return strings.Join(tokens, ", ")
}

// DecodeItem parses a single token.
func DecodeItem(token string) (model.ItemLine, error) {
	token = strings.TrimSpace(token)
	qtyPart, name, ok := strings.Cut(token, itemSeparator)
	if !ok {
		return model.ItemLine{}, TokenError{Token: token, Err: fmt.Errorf("missing %q", itemSeparator)}
	}
	if strings.Contains(name, itemSeparator) {
		return model.ItemLine{}, TokenError{Token: token, Err: fmt.Errorf("more than one %q", itemSeparator)}
	}
	qtyPart = strings.NewReplacer("[", "", "x", "").Replace(qtyPart)
	qty, err := strconv.Atoi(strings.TrimSpace(qtyPart))
	if err != nil {
		return model.ItemLine{}, TokenError{Token: token, Err: err}
	}
	return model.ItemLine{Qty: qty, Name: name}, nil
}

// DecodeItems parses the stored items text. The text is split on commas, and
// a fragment that does not open a new token ("[" or "<qty>x] ") may belong to
// the previous item's name, as in "Isca (carne, frango)". When known names are
// given the fragment is merged only if the joined name still leads to one of
// them; otherwise it stands alone and is reported as malformed. Without known
// names every such fragment is merged. Malformed tokens come back as errors
// and the remaining ones are still returned.
func DecodeItems(text string, known ...string) ([]model.ItemLine, []error) {
	var tokens []string
	for _, fragment := range strings.Split(text, ",") {
		if len(tokens) > 0 && !tokenStart.MatchString(strings.TrimSpace(fragment)) {
			joined := tokens[len(tokens)-1] + "," + fragment
			if len(known) == 0 || continuesKnownName(joined, known) {
				tokens[len(tokens)-1] = joined
				continue
			}
		}
		tokens = append(tokens, fragment)
	}

	var (
		lines []model.ItemLine
		errs  []error
	)
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		line, err := DecodeItem(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lines = append(lines, line)
	}
	return lines, errs
}

func continuesKnownName(token string, known []string) bool {
	_, name, ok := strings.Cut(strings.TrimSpace(token), itemSeparator)
	if !ok || name == "" {
		return false
	}
	for _, k := range known {
		if strings.HasPrefix(k, name) {
			return true
		}
	}
	return false
}
