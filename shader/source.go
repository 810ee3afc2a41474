package shader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Source is a GLSL stage source together with its declared #version.
type Source struct {
	Code    string
	Version int
	// ES is true for "#version 300 es" (WebGL2) sources, which are translated
	// to desktop GLSL before compilation.
	ES bool
}

// LoadSource reads a whole shader file. Line endings are normalised to \n and the
// result always ends in a newline.
func LoadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	src := strings.ReplaceAll(string(b), "\r\n", "\n")
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("load shader %q: file is empty", path)
	}
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	return src, nil
}

// Parse locates the #version directive, which must precede any code.
func Parse(code string) (Source, error) {
	s := Source{Code: code}
	sc := bufio.NewScanner(strings.NewReader(code))
	inComment := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if inComment {
			end := strings.Index(line, "*/")
			if end < 0 {
				continue
			}
			inComment = false
			line = strings.TrimSpace(line[end+2:])
		}
		for strings.HasPrefix(line, "/*") {
			end := strings.Index(line[2:], "*/")
			if end < 0 {
				inComment = true
				break
			}
			line = strings.TrimSpace(line[end+4:])
		}
		if inComment || line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if !strings.HasPrefix(line, "#version") {
			return s, fmt.Errorf("shader has no #version directive before %q", line)
		}
		fields := strings.Fields(strings.TrimPrefix(line, "#version"))
		if len(fields) == 0 {
			return s, fmt.Errorf("malformed #version directive")
		}
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return s, fmt.Errorf("malformed #version %q: %w", fields[0], err)
		}
		s.Version = v
		s.ES = len(fields) > 1 && fields[1] == "es"
		return s, nil
	}
	return s, fmt.Errorf("shader has no #version directive")
}
