package export

// appCSS is embedded into the document head so the artifact renders without
// fetching anything at view time.
const appCSS = `
:root {
  --bg: #f6f8fa;
  --panel: #ffffff;
  --ink: #1f2328;
  --muted: #656d76;
  --line: #d0d7de;
  --accent: #0969da;
  --failure: #cf222e;
  --ok: #1a7f37;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--ink);
  font: 14px/1.5 -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
}
header.masthead {
  background: var(--panel);
  border-bottom: 1px solid var(--line);
  padding: 20px 32px;
}
header.masthead h1 { margin: 0 0 4px; font-size: 22px; }
header.masthead p { margin: 0; color: var(--muted); }
main { max-width: 1200px; margin: 0 auto; padding: 24px 32px 64px; }
section.panel {
  background: var(--panel);
  border: 1px solid var(--line);
  border-radius: 8px;
  padding: 20px 24px;
  margin-bottom: 24px;
}
section.panel > h2 { margin-top: 0; font-size: 18px; }
section.panel h3 { font-size: 15px; margin-bottom: 8px; }
p.note { color: var(--muted); font-style: italic; }
.kpi-row { display: flex; flex-wrap: wrap; gap: 16px; margin-bottom: 12px; }
.kpi {
  border: 1px solid var(--line);
  border-radius: 8px;
  padding: 10px 16px;
  min-width: 130px;
}
.kpi .kpi-value { font-size: 20px; font-weight: 600; display: block; }
.kpi .kpi-label { color: var(--muted); font-size: 12px; }
.kpi.failure .kpi-value { color: var(--failure); }
table { border-collapse: collapse; width: 100%; margin: 8px 0 16px; }
th, td { text-align: left; padding: 5px 10px; border-bottom: 1px solid var(--line); }
th { color: var(--muted); font-weight: 600; font-size: 12px; text-transform: uppercase; }
tr.failure td { background: #fff1f0; }
td.num, th.num { text-align: right; font-variant-numeric: tabular-nums; }
svg.chart { width: 100%; height: auto; display: block; margin: 8px 0 16px; }
svg .bar { fill: var(--accent); opacity: 0.85; }
svg .bar-value { font-size: 10px; fill: var(--muted); }
svg .bar-label { font-size: 10px; fill: var(--muted); }
svg .dot { fill: var(--accent); opacity: 0.6; }
svg .dot-failure { fill: var(--failure); opacity: 0.9; }
details.drilldown { border: 1px solid var(--line); border-radius: 8px; margin-bottom: 12px; }
details.drilldown > summary {
  cursor: pointer;
  padding: 10px 16px;
  font-weight: 600;
  list-style-position: inside;
}
details.drilldown > div { padding: 4px 16px 16px; }
ul.warnings { color: var(--muted); }
footer { color: var(--muted); text-align: center; padding-bottom: 32px; font-size: 12px; }
`
