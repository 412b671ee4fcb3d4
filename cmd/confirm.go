package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmAction prompts on in for a Y/N answer to actionText, repeating the
// prompt until one is given. deniedText is logged when the answer is N.
func ConfirmAction(in io.Reader, actionText, deniedText string) (bool, error) {
	reader := bufio.NewReader(in)
	log.Warn(actionText)
	for {
		fmt.Print(">> ")
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return false, err
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y":
			return true, nil
		case "N":
			log.Info(deniedText)
			return false, nil
		default:
			log.Errorf("Invalid option of %s chosen, enter Y/N", strings.TrimSpace(line))
			if err == io.EOF {
				return false, err
			}
		}
	}
}
