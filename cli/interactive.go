package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pcpart-scraper/scraper"
)

// promptParams fills the mix parameters from an interactive prompt session,
// replacing whatever flags were given on the command line.
func (c *MixCommand) promptParams(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "\n🔧 PC COMPONENT MIXER")
	fmt.Fprintln(out, "Available components:")
	keys := scraper.CatalogKeys()
	for i, key := range keys {
		fmt.Fprintf(out, "  %d. %s\n", i+1, key)
	}

	selection, err := prompt(reader, out, "Components (numbers, names or 'all'): ")
	if err != nil {
		return err
	}
	c.Components, err = parseSelection(selection, keys)
	if err != nil {
		return err
	}

	keywords, err := prompt(reader, out, "Keywords (space separated, empty for none): ")
	if err != nil {
		return err
	}
	c.Keywords = strings.Fields(keywords)

	c.MinPrice, err = promptPrice(reader, out, "Minimum price in € (empty for none): ")
	if err != nil {
		return err
	}
	c.MaxPrice, err = promptPrice(reader, out, "Maximum price in € (empty for none): ")
	if err != nil {
		return err
	}

	c.AIQuery, err = prompt(reader, out, "AI query (empty to skip): ")
	if err != nil {
		return err
	}

	analyze, err := prompt(reader, out, "Run AI deal analysis? (y/N): ")
	if err != nil {
		return err
	}
	c.AIAnalyze = strings.EqualFold(analyze, "y") || strings.EqualFold(analyze, "yes")

	return nil
}

func prompt(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPrice(reader *bufio.Reader, out io.Writer, label string) (*float64, error) {
	raw, err := prompt(reader, out, label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", raw)
	}
	return &value, nil
}

// parseSelection accepts numbered picks like "1,3", component names, or
// "all", and returns component keys for resolveCatalogs to validate.
func parseSelection(input string, keys []string) ([]string, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no components selected")
	}

	var selected []string
	for _, field := range fields {
		if strings.EqualFold(field, "all") {
			return []string{"all"}, nil
		}
		if n, err := strconv.Atoi(field); err == nil {
			if n < 1 || n > len(keys) {
				return nil, fmt.Errorf("component number %d out of range 1-%d", n, len(keys))
			}
			selected = append(selected, keys[n-1])
			continue
		}
		selected = append(selected, field)
	}
	return selected, nil
}
