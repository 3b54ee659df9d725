package handlers

// @title Eyewear AI Proxy
// @version 1.0
// @description Serverless proxy forwarding a face photo and a prompt to generative AI APIs for eyewear style advice and try-on image edits

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

// @tag.name proxy
// @tag.description Style advice and image edit operations
