package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	gossh "golang.org/x/crypto/ssh"
)

// authorizedKeys maps SHA256 fingerprints to the key comment.
type authorizedKeys map[string]string

// loadAuthorizedKeys parses an OpenSSH authorized_keys file. An empty path
// yields a nil set, which admits any key.
func loadAuthorizedKeys(path string) (authorizedKeys, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read authorized keys: %w", err)
	}
	return parseAuthorizedKeys(data)
}

func parseAuthorizedKeys(data []byte) (authorizedKeys, error) {
	keys := authorizedKeys{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pub, comment, _, _, err := gossh.ParseAuthorizedKey(line)
		if err != nil {
			return nil, fmt.Errorf("authorized keys line %d: %w", lineNo, err)
		}
		keys[gossh.FingerprintSHA256(pub)] = comment
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan authorized keys: %w", err)
	}
	return keys, nil
}

// allows reports whether key may log in and the name to greet it with.
func (a authorizedKeys) allows(key gossh.PublicKey) (string, bool) {
	fingerprint := gossh.FingerprintSHA256(key)
	if a == nil {
		return fingerprint, true
	}
	comment, ok := a[fingerprint]
	if !ok {
		return fingerprint, false
	}
	if comment == "" {
		comment = fingerprint
	}
	return comment, true
}
