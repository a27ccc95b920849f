package http

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

// indexPage is the interactive form served at the root path. It calls the
// /tokens and /generate endpoints from the browser, so no external assets or
// cross-origin configuration are needed.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Token Generator</title>
  <style>
    body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
    textarea { width: 100%; height: 6rem; }
    pre { background: #f4f4f4; padding: 1rem; overflow-x: auto; }
    img.rocket { float: right; width: 110px; }
  </style>
</head>
<body>
  <img class="rocket" src="/static/rocket.png" alt="">
  <h1>Token Generator</h1>
  <p>Submit text to get its SHA-256 checksum and one random token per word,
     or generate a single token.</p>
  <form id="tokens-form">
    <textarea id="text" name="text" placeholder="Type some text..."></textarea>
    <p>
      <button type="submit">Submit text</button>
      <button type="button" id="generate">Generate one token</button>
    </p>
  </form>
  <pre id="result"></pre>
  <script>
    const result = document.getElementById("result");
    document.getElementById("tokens-form").addEventListener("submit", async (e) => {
      e.preventDefault();
      const resp = await fetch("/tokens", {
        method: "POST",
        headers: {"Content-Type": "application/json"},
        body: JSON.stringify({text: document.getElementById("text").value}),
      });
      result.textContent = JSON.stringify(await resp.json(), null, 2);
    });
    document.getElementById("generate").addEventListener("click", async () => {
      const resp = await fetch("/generate");
      result.textContent = JSON.stringify(await resp.json(), null, 2);
    });
  </script>
</body>
</html>
`

// faviconPNGBase64 is a 1x1 PNG served at /favicon.ico so browsers don't log 404s.
const faviconPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGNgYAAAAAMAASsJTYQAAAAASUVORK5CYII="

var faviconPNG, _ = base64.StdEncoding.DecodeString(faviconPNGBase64)

// rocketSVG decorates the form page. Served at a .png path so the page can
// reference it like a regular file; browsers render it from the SVG media type.
const rocketSVG = `<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 512 512' width='220' height='220' aria-hidden='true'>
  <g>
    <path d='M186 256c0 0-42-86 68-198 110 112 68 198 68 198s-56 16-136 0z' fill='#ff4d6d'/>
    <path d='M256 96c0 0 64 24 104 72 40 48 40 112 40 112s-56 16-144 16-144-16-144-16 0-64 40-112C192 120 256 96 256 96z' fill='#ff6f91' opacity='0.95'/>
    <circle cx='326' cy='172' r='28' fill='#a6ecff'/>
    <path d='M156 400c-20-12-36-28-48-48l56-40 56 40-56 48z' fill='#ff8a65'/>
    <path d='M256 384c0 28-24 56-56 56s-56-28-56-56 24-56 56-56 56 28 56 56z' fill='#ffb74d' opacity='0.9'/>
  </g>
</svg>`

// indexHandler serves the interactive form page.
func (s *Server) indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// faviconHandler serves the inline favicon.
func (s *Server) faviconHandler(c *gin.Context) {
	c.Data(http.StatusOK, "image/png", faviconPNG)
}

// rocketHandler serves the rocket image referenced by the form page.
func (s *Server) rocketHandler(c *gin.Context) {
	c.Data(http.StatusOK, "image/svg+xml", []byte(rocketSVG))
}
