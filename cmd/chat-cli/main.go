// Command chat-cli is an interactive harness for exercising a running
// assistant: it asks for a WhatsApp number, then posts each typed line to
// the chat endpoint and prints the reply.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/api"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the assistant server")
	flag.Parse()

	endpoint := strings.TrimRight(*baseURL, "/") + api.BasePath + "/chat/message"
	client := &http.Client{Timeout: 90 * time.Second}
	in := bufio.NewScanner(os.Stdin)

	number := readWhatsappNumber(in)
	if number == "" {
		return
	}

	fmt.Println("Escribe tus mensajes. Usa 'salir' para terminar.")
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		msg := strings.TrimSpace(in.Text())
		if msg == "salir" || msg == "exit" {
			return
		}

		reply, err := sendMessage(client, endpoint, number, msg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error al enviar mensaje: %v\n", err)
			continue
		}
		fmt.Println(reply)
	}
}

func readWhatsappNumber(in *bufio.Scanner) string {
	for {
		fmt.Print("Ingrese su número de WhatsApp (formato: +573658425187): ")
		if !in.Scan() {
			return ""
		}
		number := strings.TrimSpace(in.Text())
		if api.ValidWhatsappNumber(number) {
			return number
		}
		fmt.Println("Formato inválido. Use + seguido de dígitos (ejemplo: +573658425187)")
	}
}

func sendMessage(client *http.Client, endpoint, number, message string) (string, error) {
	body, err := json.Marshal(api.ChatRequest{
		Message:        message,
		WhatsappNumber: number,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Detail != "" {
			return "", fmt.Errorf("%s (HTTP %d)", apiErr.Detail, resp.StatusCode)
		}
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var chatResp api.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	return chatResp.Response, nil
}
