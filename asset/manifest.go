package asset

import (
	"bufio"
	"fmt"
	"strings"
)

// Read a frame manifest. A manifest lists one frame location per line;
// blank lines and lines starting with '#' are ignored. Relative entries
// are resolved against the manifest location.
func ReadManifest(pathToManifest string) ([]string, error) {
	res, err := NewResource(pathToManifest, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	var entries []string
	scanner := bufio.NewScanner(res)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		loc, err := Resolve(line, res)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: line %d: %s", res.Path(), lineNum, err)
		}
		entries = append(entries, loc.String())
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("manifest %s: %s", res.Path(), err)
	}
	return entries, nil
}
