package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/constants"
)

func main() {
	addr := os.Getenv(constants.EnvAddress)
	if addr == "" {
		addr = constants.DefaultServerAddress
	}
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}
	client := &http.Client{Timeout: 2 * time.Second}
	os.Exit(check(client, "http://"+addr+constants.RouteAPIPrefix+constants.RouteVersion))
}

// check returns the process exit code for a GET of url.
func check(client *http.Client, url string) int {
	resp, err := client.Get(url)
	if err != nil {
		return 1
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 1
	}
	return 0
}
