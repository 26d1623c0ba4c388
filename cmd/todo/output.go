package main

import (
	"encoding/json"
	"fmt"
	"os"
)

func encodeJSONToStdout(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func (a *app) printSuccess(format string, args ...any) {
	fmt.Println(a.styles.Success(fmt.Sprintf(format, args...)))
}

func (a *app) printInfo(format string, args ...any) {
	fmt.Println(a.styles.Info(fmt.Sprintf(format, args...)))
}
