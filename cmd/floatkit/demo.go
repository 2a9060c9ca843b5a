package main

// demoPage is the self-contained demo: hover targets report pointer
// events with their bounding rects over the WebSocket, and a tiny
// client applies the mount/patch/destroy commands coming back.
const demoPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>floatkit demo</title>
<style>
  body { font: 16px/1.5 system-ui, sans-serif; margin: 4rem; }
  button { margin-right: 1rem; padding: .5rem 1rem; }
  .float-overlay {
    position: absolute; transform: translate(-50%, 6px);
    background: #1f2430; color: #fff; padding: .3rem .6rem;
    border-radius: 6px; font-size: 13px; pointer-events: none;
    white-space: pre;
  }
</style>
</head>
<body>
  <h1>floatkit demo</h1>
  <p>Hover the buttons; the tooltips are mounted by the server.</p>
  <button id="save" data-float>Save</button>
  <button id="publish" data-float>Publish</button>
  <button id="profile" data-float>Profile</button>
  <button id="actions" data-float data-float-click>Actions</button>
<script>
(function () {
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  var overlays = {};

  function rectOf(el) {
    var r = el.getBoundingClientRect();
    return {
      left: r.left + window.scrollX,
      top: r.top + window.scrollY,
      width: r.width,
      height: r.height
    };
  }

  function report(el, name) {
    ws.send(JSON.stringify({ t: "event", el: el.id, name: name, rect: rectOf(el) }));
  }

  ws.onopen = function () {
    document.querySelectorAll("[data-float]").forEach(function (el) {
      el.addEventListener("mouseenter", function () { report(el, "mouseenter"); });
      el.addEventListener("mouseleave", function () { report(el, "mouseleave"); });
      // Clicks bubble on to the document listener below; the server
      // side suppresses the self-dismiss.
      if (el.hasAttribute("data-float-click")) {
        el.addEventListener("click", function () { report(el, "click"); });
      }
    });
    document.addEventListener("click", function () {
      ws.send(JSON.stringify({ t: "event", el: "document", name: "click" }));
    });
    document.addEventListener("keydown", function (ev) {
      if (ev.key === "Escape") {
        ws.send(JSON.stringify({ t: "event", el: "document", name: "escape" }));
      }
    });
  };

  ws.onmessage = function (msg) {
    var cmd = JSON.parse(msg.data);
    if (cmd.t === "mount") {
      var div = document.createElement("div");
      div.className = "float-overlay";
      div.textContent = cmd.label || (cmd.body ? JSON.stringify(cmd.body) : "");
      div.style.left = cmd.x + "px";
      div.style.top = cmd.y + "px";
      (cmd.parent ? document.getElementById(cmd.parent) : document.body).appendChild(div);
      overlays[cmd.id] = div;
    } else if (cmd.t === "patch") {
      var el = overlays[cmd.id];
      if (el && cmd.label !== undefined) el.textContent = cmd.label;
    } else if (cmd.t === "destroy") {
      var gone = overlays[cmd.id];
      if (gone) { gone.remove(); delete overlays[cmd.id]; }
    }
  };
})();
</script>
</body>
</html>
`
