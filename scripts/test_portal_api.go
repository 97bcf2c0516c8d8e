package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("Starting Portal API smoke test\n")

	// 1. Resolve the landing view without a session
	color.Yellow("\n1. Resolve landing view (anonymous)")
	resp, body, err := sendRequest("GET", "/portal/view?path=/login", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var viewResp map[string]interface{}
	json.Unmarshal(body, &viewResp)
	prettyPrint(viewResp)

	// 2. Sign in with the seeded applicant
	color.Yellow("\n2. Sign in")
	signInReq := map[string]interface{}{
		"email":    "applicant@example.com",
		"password": "changeme123",
	}
	resp, body, err = sendRequest("POST", "/auth/signin", "", signInReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var signInResp struct {
		Data struct {
			SessionId   string `json:"session_id"`
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	json.Unmarshal(body, &signInResp)
	prettyPrint(signInResp)

	token := signInResp.Data.AccessToken
	if token == "" {
		color.Red("No access token returned, aborting")
		os.Exit(1)
	}

	// 3. Resolve the view again, now authenticated
	color.Yellow("\n3. Resolve /login view (authenticated, expect dashboard + replace)")
	resp, body, err = sendRequest("GET", "/portal/view?path=/login", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	json.Unmarshal(body, &viewResp)
	prettyPrint(viewResp)

	// 4. Fetch the dashboard
	color.Yellow("\n4. Fetch dashboard")
	resp, body, err = sendRequest("GET", "/dashboard/", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var dashResp map[string]interface{}
	json.Unmarshal(body, &dashResp)
	prettyPrint(dashResp)

	// 5. Sign out
	color.Yellow("\n5. Sign out")
	signOutReq := map[string]interface{}{"session_id": signInResp.Data.SessionId}
	resp, body, err = sendRequest("POST", "/auth/signout", token, signOutReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var signOutResp map[string]interface{}
	json.Unmarshal(body, &signOutResp)
	prettyPrint(signOutResp)

	color.Cyan("\nSmoke test finished")
}
