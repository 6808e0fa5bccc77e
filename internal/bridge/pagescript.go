package bridge

// Fixed page-side contract. The adapter injects PageScript at document
// start into every frame of every page; pages and editor extensions are
// written against these exact names, so they are process-wide constants,
// not per-instance state.
const (
	// MessageHandlerName is the script message channel registered with the
	// engine's user content manager.
	MessageHandlerName = "inlay"

	// InterruptMessageType is posted by the page-side keydown listener when
	// it observes the host interrupt chord (Control+g) inside the page.
	InterruptMessageType = "interrupt"
)

// PageScript exposes the focus introspection function and reports the host
// interrupt chord from inside the page's own event path, which native key
// handling never sees once page script has claimed focus.
const PageScript = `(function() {
  if (window.__inlay) { return; }
  window.__inlay = {
    activeElementIsEditable: function() {
      var el = document.activeElement;
      if (!el) { return false; }
      if (el.isContentEditable) { return true; }
      var tag = el.tagName ? el.tagName.toUpperCase() : '';
      if (tag === 'TEXTAREA' || tag === 'SELECT') { return true; }
      if (tag === 'INPUT') {
        var type = (el.getAttribute('type') || 'text').toLowerCase();
        return type !== 'button' && type !== 'checkbox' && type !== 'radio' &&
               type !== 'submit' && type !== 'reset' && type !== 'image';
      }
      return false;
    }
  };
  window.addEventListener('keydown', function(ev) {
    if (ev.ctrlKey && !ev.altKey && !ev.metaKey && (ev.key === 'g' || ev.key === 'G')) {
      if (window.webkit && window.webkit.messageHandlers &&
          window.webkit.messageHandlers.inlay) {
        window.webkit.messageHandlers.inlay.postMessage({type: 'interrupt'});
      }
    }
  }, true);
})();`

// FocusQueryScript is the fixed introspection call the focus arbiter
// evaluates to ask whether an editable element holds focus in the page.
const FocusQueryScript = `window.__inlay.activeElementIsEditable();`
