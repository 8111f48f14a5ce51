package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// printJSON renders a server-defined payload as indented JSON. Stats and
// analytics shapes are owned by the server, so they are shown as received.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(data))
}

// getID prompts for a numeric resource id.
func getID(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	text, err := getSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", text)
	}
	return id, nil
}

func checkmark(done bool) string {
	if done {
		return "x"
	}
	return " "
}
