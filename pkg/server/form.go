package server

// formPage is the interactive classification form. It posts to the JSON API
// and renders the returned report client-side.
const formPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>EU AI Act Risk Classifier</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
label { display: block; margin-top: 1rem; font-weight: bold; }
input[type=text], textarea { width: 100%; padding: 0.5rem; margin-top: 0.25rem; }
textarea { height: 9rem; }
button { margin-top: 1.5rem; padding: 0.6rem 1.4rem; }
#result { margin-top: 2rem; white-space: pre-wrap; background: #f4f4f4; padding: 1rem; }
.error { color: #a00; }
.disclaimer { margin-top: 2rem; font-size: 0.85rem; color: #555; }
</style>
</head>
<body>
<h1>EU AI Act Risk Classifier</h1>
<p>Preliminary risk classification of AI systems under the EU AI Act.</p>
<form id="classifier-form">
  <label for="name">System name</label>
  <input type="text" id="name" required>
  <label for="company">Company</label>
  <input type="text" id="company" required>
  <label for="description">Description (at least 50 characters)</label>
  <textarea id="description" required></textarea>
  <label><input type="checkbox" id="search"> Search the web for additional context</label>
  <button type="submit">Classify System</button>
</form>
<div id="result"></div>
<p class="disclaimer">This tool provides preliminary assessments only.
Consult qualified legal professionals for compliance decisions.</p>
<script>
document.getElementById("classifier-form").addEventListener("submit", async function (ev) {
  ev.preventDefault();
  const out = document.getElementById("result");
  out.textContent = "Classifying...";
  const body = {
    name: document.getElementById("name").value,
    company: document.getElementById("company").value,
    description: document.getElementById("description").value,
    enable_search: document.getElementById("search").checked
  };
  try {
    const resp = await fetch("/api/classify", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify(body)
    });
    const data = await resp.json();
    if (!resp.ok) {
      out.innerHTML = '<span class="error">' + (data.error || "request failed") + "</span>";
      return;
    }
    out.textContent = JSON.stringify(data, null, 2);
  } catch (err) {
    out.innerHTML = '<span class="error">' + err + "</span>";
  }
});
</script>
</body>
</html>`
