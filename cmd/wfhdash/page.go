package main

// pageHTML is the dashboard page, rendered once per request with the resolved
// selection. Control changes round-trip through /api/selection so dependent
// dropdowns stay consistent without a page reload; the chart is a plain <img>
// pointed at /chart.png.
const pageHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Remote/Hybrid Work Survey Dashboard</title>
<style>
body { font-family: Inter, Helvetica, Arial, sans-serif; background-color: #f8f9fc; padding: 30px; text-align: center; color: #1f2c56; }
h2 { font-weight: 700; margin-bottom: 30px; }
.control { margin-bottom: 20px; }
.control > label { font-weight: 600; font-size: 15px; margin-bottom: 6px; display: block; }
.radio-option { display: inline; font-weight: 400; margin-right: 16px; }
select { width: 100%; max-width: 650px; margin: 5px auto; background-color: #ffffff; border: 1px solid #d1d3e0; border-radius: 8px; padding: 10px 12px; font-size: 14px; color: #1f2c56; box-shadow: 0 2px 6px rgba(0,0,0,0.05); }
#chart-container { margin-top: 30px; padding: 20px; border-radius: 10px; background-color: #ffffff; box-shadow: 0 4px 12px rgba(0,0,0,0.05); }
#chart { max-width: 100%; }
</style>
</head>
<body>
<h2>Remote/Hybrid Work Survey Dashboard</h2>

<div class="control">
  <label>Filter by Q8 Response:</label>
  {{range .Filters}}<label class="radio-option"><input type="radio" name="filter" value="{{.Value}}"{{if eq .Value $.Filter}} checked{{end}}> {{.Label}}</label>
  {{end}}
</div>

<div class="control">
  <label for="field">Select question to analyze:</label>
  <select id="field">
    {{range .Questions}}<option value="{{.Value}}"{{if eq .Value $.Field}} selected{{end}}>{{.Label}}</option>
    {{end}}
  </select>
</div>

<div class="control" id="choice-container"{{if not .ChoiceVisible}} style="display:none"{{end}}>
  <label for="choice">Select option within multi-select question:</label>
  <select id="choice">
    {{range .Choices}}<option value="{{.Value}}"{{if eq .Value $.Choice}} selected{{end}}>{{.Label}}</option>
    {{end}}
  </select>
</div>

<div class="control">
  <label for="disagg">Disaggregate by:</label>
  <select id="disagg">
    {{range .Disaggs}}<option value="{{.Value}}"{{if eq .Value $.Disagg}} selected{{end}}>{{.Label}}</option>
    {{end}}
  </select>
</div>

<div id="chart-container">
  <img id="chart" alt="survey chart">
</div>

<script>
(function () {
  function params() {
    var filter = document.querySelector('input[name="filter"]:checked');
    return new URLSearchParams({
      filter: filter ? filter.value : "",
      field: document.getElementById("field").value,
      choice: document.getElementById("choice").value || "",
      disagg: document.getElementById("disagg").value
    });
  }

  function fillSelect(sel, options, value) {
    sel.innerHTML = "";
    (options || []).forEach(function (o) {
      var opt = document.createElement("option");
      opt.value = o.value;
      opt.textContent = o.label;
      if (o.value === value) opt.selected = true;
      sel.appendChild(opt);
    });
  }

  function refresh() {
    fetch("/api/selection?" + params()).then(function (r) { return r.json(); }).then(function (res) {
      document.querySelectorAll('input[name="filter"]').forEach(function (radio) {
        radio.checked = radio.value === res.filter;
      });
      fillSelect(document.getElementById("field"), res.questions, res.field);
      fillSelect(document.getElementById("choice"), res.choices, res.choice);
      document.getElementById("choice-container").style.display = res.choiceVisible ? "" : "none";

      var q = params();
      q.set("width", String(Math.max(640, document.getElementById("chart-container").clientWidth - 40)));
      document.getElementById("chart").src = "/chart.png?" + q;
    });
  }

  document.addEventListener("change", function (e) {
    if (e.target.matches("select, input[type=radio]")) refresh();
  });
  refresh();
})();
</script>
</body>
</html>
`
