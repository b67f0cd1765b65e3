package file

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/openokr/okr/okr"
)

// ReadSentences reads one raw sentence per line from the given path.
// Blank lines and lines starting with '#' are skipped.
func ReadSentences(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sentences []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sentences, nil
}

// ReadOKRs reads a JSON array of OKR records from the given path.
func ReadOKRs(path string) ([]okr.OKR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var okrs []okr.OKR
	if err := json.Unmarshal(data, &okrs); err != nil {
		return nil, err
	}

	return okrs, nil
}
