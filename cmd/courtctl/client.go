package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

// Client is a thin wrapper over the Courtside HTTP API.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func newClient() *Client {
	return &Client{BaseURL: apiURL, Token: apiToken, http: &http.Client{Timeout: 15 * time.Second}}
}

func (c *Client) do(method, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if verbose {
		fmt.Printf("> %s %s\n", method, c.BaseURL+path)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(data))
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

var loginCmd = &cobra.Command{
	Use:   "login EMAIL PASSWORD",
	Short: "Log in and print an access token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out struct {
			AccessToken string `json:"access_token"`
		}
		err := newClient().do(http.MethodPost, "/api/auth/login",
			map[string]string{"email": args[0], "password": args[1]}, &out)
		if err != nil {
			return err
		}
		fmt.Println(out.AccessToken)
		return nil
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List your sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out []map[string]any
		if err := newClient().do(http.MethodGet, "/api/sessions", nil, &out); err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

var emailCmd = &cobra.Command{
	Use:   "email TO SUBJECT BODY",
	Short: "Send an email through the notifications API",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out struct {
			Success    bool     `json:"success"`
			MessageIDs []string `json:"message_ids"`
			Errors     []string `json:"errors"`
		}
		err := newClient().do(http.MethodPost, "/api/notifications/email",
			map[string]string{"to": args[0], "subject": args[1], "text": args[2]}, &out)
		if err != nil {
			return err
		}
		if !out.Success {
			return fmt.Errorf("delivery failed: %v", out.Errors)
		}
		fmt.Printf("sent: %v\n", out.MessageIDs)
		return nil
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm SESSION_ID",
	Short: "Dispatch a booking confirmation email for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := newClient().do(http.MethodPost, "/api/notifications/confirm",
			map[string]string{"sessionId": args[0]}, nil)
		if err != nil {
			return err
		}
		fmt.Println("confirmation dispatched")
		return nil
	},
}
