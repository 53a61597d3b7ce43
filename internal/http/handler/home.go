package handler

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

// The landing page is deliberately self-contained (no external assets) so it
// renders even when the cluster blocks egress.
var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.AppName}}</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; color: #222; }
    h1 { margin-bottom: 0; }
    .version { color: #777; font-size: 0.9rem; margin-top: 0.25rem; }
    section { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin: 1rem 0; }
    section h2 { margin: 0 0 0.5rem; font-size: 1.1rem; }
    code { background: #f4f4f4; padding: 0.1rem 0.3rem; border-radius: 3px; }
    input { padding: 0.4rem; margin-right: 0.5rem; }
    button { padding: 0.4rem 0.8rem; cursor: pointer; }
    pre { background: #f8f8f8; padding: 0.5rem; border-radius: 4px; min-height: 1.2rem; white-space: pre-wrap; }
  </style>
</head>
<body>
  <h1>{{.AppName}}</h1>
  <p class="version">version {{.Version}}</p>
  <p>Deployment validation service. Use the controls below to exercise each
  endpoint from the browser, or curl them directly.</p>

  <section>
    <h2>GET <code>/ping</code></h2>
    <button onclick="call('GET', '/ping', null, 'ping-out')">Ping</button>
    <pre id="ping-out"></pre>
  </section>

  <section>
    <h2>POST <code>/hello</code></h2>
    <input id="hello-name" placeholder="your name" />
    <button onclick="call('POST', '/hello', {name: document.getElementById('hello-name').value}, 'hello-out')">Say hello</button>
    <pre id="hello-out"></pre>
  </section>

  <section>
    <h2>POST <code>/iseven</code></h2>
    <input id="iseven-number" type="number" placeholder="number" />
    <button onclick="call('POST', '/iseven', {number: Number(document.getElementById('iseven-number').value)}, 'iseven-out')">Check parity</button>
    <pre id="iseven-out"></pre>
  </section>

  <section>
    <h2>GET <code>/health</code></h2>
    <button onclick="call('GET', '/health', null, 'health-out')">Check health</button>
    <pre id="health-out"></pre>
  </section>

  <script>
    async function call(method, path, body, outId) {
      const out = document.getElementById(outId);
      try {
        const opts = { method: method };
        if (body !== null) {
          opts.headers = { 'Content-Type': 'application/json' };
          opts.body = JSON.stringify(body);
        }
        const resp = await fetch(path, opts);
        const text = await resp.text();
        out.textContent = 'HTTP ' + resp.status + '\n' + text;
      } catch (err) {
        out.textContent = 'request failed: ' + err;
      }
    }
  </script>
</body>
</html>
`))

// Home returns the handler for GET /. The only dynamic inputs are
// process-level metadata, so the page is rendered once and served as-is on
// every request.
// @Summary Landing page
// @Tags demo
// @Produce html
// @Success 200 {string} string "HTML document"
// @Router / [get]
func Home(appName, appVersion string) fiber.Handler {
	page := renderHome(appName, appVersion)
	return func(c *fiber.Ctx) error {
		c.Type("html")
		return c.Send(page)
	}
}

func renderHome(appName, appVersion string) []byte {
	var buf bytes.Buffer
	err := homeTemplate.Execute(&buf, map[string]string{
		"AppName": appName,
		"Version": appVersion,
	})
	if err != nil {
		// The template and its inputs are fixed at startup.
		panic(err)
	}
	return buf.Bytes()
}
