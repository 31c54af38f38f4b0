// Command assistant runs the housing finder as an interactive terminal
// chatbot against the local CSV dataset.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"

	"housing_finder/internal/adapters/observability"
	"housing_finder/internal/adapters/speech"
	"housing_finder/internal/assistant"
	"housing_finder/internal/dataset"
	"housing_finder/internal/domain"
	"housing_finder/internal/search"
	"housing_finder/internal/shared"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger("dev")

	ds, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}

	engine := search.New(ds, search.DefaultWeights())
	session := assistant.NewSession(assistant.New(engine))

	var mic domain.SpeechInput = speech.Noop{}

	fmt.Print(assistant.WelcomeMessage)
	prompt := promptui.Prompt{Label: "You"}

	for {
		input, err := readInput(prompt, mic)
		if err != nil {
			// ^C / ^D
			fmt.Println("\nGoodbye! Good luck with your housing search.")
			return
		}

		reply := session.ProcessTurn(input)
		fmt.Printf("\nAssistant: %s\n\n", reply)

		if strings.HasPrefix(reply, "Goodbye") {
			return
		}
	}
}

// readInput prefers the microphone when a speech backend is configured and
// falls back to the keyboard prompt.
func readInput(prompt promptui.Prompt, mic domain.SpeechInput) (string, error) {
	if mic.Available() {
		if text, err := mic.Listen(context.Background()); err == nil && text != "" {
			fmt.Printf("You: %s\n", text)
			return text, nil
		}
	}
	return prompt.Run()
}
