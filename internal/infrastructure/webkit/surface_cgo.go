//go:build webkit_cgo

package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4 javascriptcoregtk-6.0
#include <stdlib.h>
#include <gtk/gtk.h>
#include <webkit/webkit.h>
#include <jsc/jsc.h>

extern void goInlayLoadFinished(unsigned long id, const char* uri);
extern int  goInlayNavigationDecision(unsigned long id, const char* uri, int user_gesture);
extern int  goInlayResponseDecision(unsigned long id, const char* uri, const char* mime,
                                    int can_show, const char* csp, const char* filename);
extern void goInlayScriptMessage(unsigned long id, const char* json);
extern void goInlayScriptDone(unsigned long seq, const char* json);
extern void goInlayScriptFailed(unsigned long seq, const char* message);
extern int  goInlayKeyPressed(unsigned long id, unsigned int keyval, unsigned int keycode, unsigned int state);
extern void goInlayButton(unsigned long id, unsigned int button, int pressed, double x, double y);

static void inlay_on_load_changed(WebKitWebView* view, WebKitLoadEvent event, gpointer id) {
    if (event != WEBKIT_LOAD_FINISHED) return;
    const gchar* uri = webkit_web_view_get_uri(view);
    goInlayLoadFinished((unsigned long)id, uri ? uri : "");
}

static gboolean inlay_on_decide_policy(WebKitWebView* view, WebKitPolicyDecision* decision,
                                       WebKitPolicyDecisionType type, gpointer id) {
    (void)view;
    if (type == WEBKIT_POLICY_DECISION_TYPE_NAVIGATION_ACTION) {
        WebKitNavigationPolicyDecision* nav = WEBKIT_NAVIGATION_POLICY_DECISION(decision);
        WebKitNavigationAction* action = webkit_navigation_policy_decision_get_navigation_action(nav);
        WebKitURIRequest* req = webkit_navigation_action_get_request(action);
        const gchar* uri = webkit_uri_request_get_uri(req);
        int verdict = goInlayNavigationDecision((unsigned long)id, uri ? uri : "",
                                                webkit_navigation_action_is_user_gesture(action) ? 1 : 0);
        if (verdict == 2) {
            webkit_policy_decision_ignore(decision);
        } else {
            webkit_policy_decision_use(decision);
        }
        return TRUE;
    }
    if (type == WEBKIT_POLICY_DECISION_TYPE_RESPONSE) {
        WebKitResponsePolicyDecision* resp = WEBKIT_RESPONSE_POLICY_DECISION(decision);
        WebKitURIResponse* response = webkit_response_policy_decision_get_response(resp);
        const gchar* uri = webkit_uri_response_get_uri(response);
        const gchar* mime = webkit_uri_response_get_mime_type(response);
        const gchar* filename = webkit_uri_response_get_suggested_filename(response);
        const gchar* csp = NULL;
        SoupMessageHeaders* headers = webkit_uri_response_get_http_headers(response);
        if (headers) {
            csp = soup_message_headers_get_one(headers, "Content-Security-Policy");
        }
        int can_show = webkit_response_policy_decision_is_mime_type_supported(resp) ? 1 : 0;
        int verdict = goInlayResponseDecision((unsigned long)id, uri ? uri : "",
                                              mime ? mime : "", can_show,
                                              csp ? csp : "", filename ? filename : "");
        if (verdict == 3) {
            webkit_policy_decision_download(decision);
        } else if (verdict == 2) {
            webkit_policy_decision_ignore(decision);
        } else {
            webkit_policy_decision_use(decision);
        }
        return TRUE;
    }
    return FALSE;
}

static void inlay_on_script_message(WebKitUserContentManager* ucm, JSCValue* value, gpointer id) {
    (void)ucm;
    char* json = jsc_value_to_json(value, 0);
    goInlayScriptMessage((unsigned long)id, json ? json : "null");
    g_free(json);
}

static void inlay_on_eval_ready(GObject* source, GAsyncResult* result, gpointer seq) {
    GError* error = NULL;
    JSCValue* value = webkit_web_view_evaluate_javascript_finish(WEBKIT_WEB_VIEW(source), result, &error);
    if (error) {
        goInlayScriptFailed((unsigned long)seq, error->message ? error->message : "evaluation failed");
        g_error_free(error);
        return;
    }
    char* json = value ? jsc_value_to_json(value, 0) : NULL;
    goInlayScriptDone((unsigned long)seq, json ? json : "null");
    g_free(json);
    if (value) g_object_unref(value);
}

static gboolean inlay_on_key_pressed(GtkEventControllerKey* ctrl, guint keyval, guint keycode,
                                     GdkModifierType state, gpointer id) {
    (void)ctrl;
    return goInlayKeyPressed((unsigned long)id, keyval, keycode, (unsigned int)state) ? TRUE : FALSE;
}

static void inlay_on_button_pressed(GtkGestureClick* gesture, int n_press, double x, double y, gpointer id) {
    (void)n_press;
    guint button = gtk_gesture_single_get_current_button(GTK_GESTURE_SINGLE(gesture));
    goInlayButton((unsigned long)id, button, 1, x, y);
}

static void inlay_on_button_released(GtkGestureClick* gesture, int n_press, double x, double y, gpointer id) {
    (void)n_press;
    guint button = gtk_gesture_single_get_current_button(GTK_GESTURE_SINGLE(gesture));
    goInlayButton((unsigned long)id, button, 0, x, y);
}

static GtkWidget* inlay_new_view(const char* handler_name, const char* page_script,
                                 WebKitUserContentManager** out_ucm, unsigned long id) {
    WebKitUserContentManager* ucm = webkit_user_content_manager_new();
    if (!ucm) return NULL;

    webkit_user_content_manager_register_script_message_handler(ucm, handler_name, NULL);
    gchar* signal = g_strdup_printf("script-message-received::%s", handler_name);
    g_signal_connect_data(G_OBJECT(ucm), signal, G_CALLBACK(inlay_on_script_message),
                          (gpointer)id, NULL, 0);
    g_free(signal);

    WebKitUserScript* script = webkit_user_script_new(page_script,
        WEBKIT_USER_CONTENT_INJECT_ALL_FRAMES,
        WEBKIT_USER_SCRIPT_INJECT_AT_DOCUMENT_START,
        NULL, NULL);
    webkit_user_content_manager_add_script(ucm, script);
    webkit_user_script_unref(script);

    GtkWidget* view = GTK_WIDGET(g_object_new(WEBKIT_TYPE_WEB_VIEW,
        "user-content-manager", ucm, NULL));
    if (!view) { g_object_unref(ucm); return NULL; }

    g_signal_connect_data(G_OBJECT(view), "load-changed",
                          G_CALLBACK(inlay_on_load_changed), (gpointer)id, NULL, 0);
    g_signal_connect_data(G_OBJECT(view), "decide-policy",
                          G_CALLBACK(inlay_on_decide_policy), (gpointer)id, NULL, 0);

    GtkEventController* keys = gtk_event_controller_key_new();
    gtk_event_controller_set_propagation_phase(keys, GTK_PHASE_CAPTURE);
    g_signal_connect_data(G_OBJECT(keys), "key-pressed",
                          G_CALLBACK(inlay_on_key_pressed), (gpointer)id, NULL, 0);
    gtk_widget_add_controller(view, keys);

    GtkGesture* click = gtk_gesture_click_new();
    gtk_gesture_single_set_button(GTK_GESTURE_SINGLE(click), 0);
    gtk_event_controller_set_propagation_phase(GTK_EVENT_CONTROLLER(click), GTK_PHASE_CAPTURE);
    g_signal_connect_data(G_OBJECT(click), "pressed",
                          G_CALLBACK(inlay_on_button_pressed), (gpointer)id, NULL, 0);
    g_signal_connect_data(G_OBJECT(click), "released",
                          G_CALLBACK(inlay_on_button_released), (gpointer)id, NULL, 0);
    gtk_widget_add_controller(view, GTK_EVENT_CONTROLLER(click));

    *out_ucm = ucm;
    return view;
}
*/
import "C"

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/domain/entity"
)

// nativeSurface holds the WebKit objects behind one surface.
type nativeSurface struct {
	view *C.GtkWidget
	wv   *C.WebKitWebView
	ucm  *C.WebKitUserContentManager
}

var errNativeCreate = errors.New("failed to create web view")

// surfaceRegistry resolves signal-callback IDs to surfaces. Signal wiring
// passes the surface ID as user data, never a Go pointer.
var (
	surfaceRegMu    sync.RWMutex
	surfaceRegistry = make(map[uint64]*Surface)
)

func registerSurface(s *Surface) {
	surfaceRegMu.Lock()
	surfaceRegistry[uint64(s.id)] = s
	surfaceRegMu.Unlock()
}

func unregisterSurface(id entity.SurfaceID) {
	surfaceRegMu.Lock()
	delete(surfaceRegistry, uint64(id))
	surfaceRegMu.Unlock()
}

func lookupSurface(id C.ulong) *Surface {
	surfaceRegMu.RLock()
	defer surfaceRegMu.RUnlock()
	return surfaceRegistry[uint64(id)]
}

// pendingEvals maps evaluation sequence numbers to completion callbacks.
var (
	pendingMu    sync.Mutex
	pendingSeq   uint64
	pendingEvals = make(map[uint64]port.ScriptResultFunc)
)

func (s *Surface) nativeInit(width, height int) error {
	chandler := C.CString(bridge.MessageHandlerName)
	defer C.free(unsafe.Pointer(chandler))
	cscript := C.CString(bridge.PageScript)
	defer C.free(unsafe.Pointer(cscript))

	var ucm *C.WebKitUserContentManager
	view := C.inlay_new_view(chandler, cscript, &ucm, C.ulong(s.id))
	if view == nil {
		return errNativeCreate
	}

	C.gtk_widget_set_size_request(view, C.int(width), C.int(height))

	s.native = nativeSurface{
		view: view,
		wv:   (*C.WebKitWebView)(unsafe.Pointer(view)),
		ucm:  ucm,
	}
	registerSurface(s)
	return nil
}

// Widget returns the GTK widget pointer for container embedding.
func (s *Surface) Widget() unsafe.Pointer {
	return unsafe.Pointer(s.native.view)
}

func (s *Surface) nativeLoadURI(uri string) error {
	curi := C.CString(uri)
	defer C.free(unsafe.Pointer(curi))
	C.webkit_web_view_load_uri(s.native.wv, (*C.gchar)(curi))
	return nil
}

func (s *Surface) nativeReload() error {
	C.webkit_web_view_reload(s.native.wv)
	return nil
}

func (s *Surface) nativeGoBack() error {
	C.webkit_web_view_go_back(s.native.wv)
	return nil
}

func (s *Surface) nativeGoForward() error {
	C.webkit_web_view_go_forward(s.native.wv)
	return nil
}

func (s *Surface) nativeURI() string {
	uri := C.webkit_web_view_get_uri(s.native.wv)
	if uri == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(uri)))
}

func (s *Surface) nativeTitle() string {
	title := C.webkit_web_view_get_title(s.native.wv)
	if title == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(title)))
}

func (s *Surface) nativeContentSize() (int, int) {
	width := C.gtk_widget_get_width(s.native.view)
	height := C.gtk_widget_get_height(s.native.view)
	return int(width), int(height)
}

func (s *Surface) nativeResize(width, height int) error {
	C.gtk_widget_set_size_request(s.native.view, C.int(width), C.int(height))
	return nil
}

func (s *Surface) nativeSetZoom(level float64) error {
	C.webkit_web_view_set_zoom_level(s.native.wv, C.gdouble(level))
	return nil
}

func (s *Surface) nativeEvaluate(script string, fn port.ScriptResultFunc) {
	pendingMu.Lock()
	pendingSeq++
	seq := pendingSeq
	pendingEvals[seq] = fn
	pendingMu.Unlock()

	cjs := C.CString(script)
	defer C.free(unsafe.Pointer(cjs))
	C.webkit_web_view_evaluate_javascript(
		s.native.wv,
		(*C.gchar)(cjs),
		C.gssize(-1),
		nil, // world_name
		nil, // source_uri
		nil, // cancellable
		C.GAsyncReadyCallback(C.inlay_on_eval_ready),
		C.gpointer(uintptr(seq)),
	)
}

func (s *Surface) nativeDetachHandlers() error {
	chandler := C.CString(bridge.MessageHandlerName)
	defer C.free(unsafe.Pointer(chandler))
	C.webkit_user_content_manager_unregister_script_message_handler(s.native.ucm, chandler, nil)
	C.webkit_user_content_manager_remove_all_scripts(s.native.ucm)
	return nil
}

func (s *Surface) nativeRelease() {
	unregisterSurface(s.id)
	if s.native.view != nil {
		C.g_object_unref(C.gpointer(unsafe.Pointer(s.native.view)))
	}
	s.native = nativeSurface{}
}

func takePending(seq uint64) port.ScriptResultFunc {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	fn := pendingEvals[seq]
	delete(pendingEvals, seq)
	return fn
}

//export goInlayLoadFinished
func goInlayLoadFinished(id C.ulong, uri *C.char) {
	s := lookupSurface(id)
	if s == nil {
		return
	}
	s.pool.dispatch(bridge.NavigationFinished{
		Surface: s.id,
		URI:     C.GoString(uri),
	})
}

//export goInlayNavigationDecision
func goInlayNavigationDecision(id C.ulong, uri *C.char, userGesture C.int) C.int {
	s := lookupSurface(id)
	if s == nil {
		return C.int(bridge.DecisionAllow)
	}
	d := s.pool.dispatch(bridge.NavigationDecision{
		Surface:     s.id,
		URI:         C.GoString(uri),
		UserGesture: userGesture != 0,
	})
	return C.int(d)
}

//export goInlayResponseDecision
func goInlayResponseDecision(id C.ulong, uri, mime *C.char, canShow C.int, csp, filename *C.char) C.int {
	s := lookupSurface(id)
	if s == nil {
		return C.int(bridge.DecisionAllow)
	}
	d := s.pool.dispatch(bridge.ResponseDecision{
		Surface:               s.id,
		URI:                   C.GoString(uri),
		MIMEType:              C.GoString(mime),
		CanShow:               canShow != 0,
		ContentSecurityPolicy: C.GoString(csp),
		SuggestedFilename:     C.GoString(filename),
	})
	return C.int(d)
}

//export goInlayScriptMessage
func goInlayScriptMessage(id C.ulong, json *C.char) {
	s := lookupSurface(id)
	if s == nil {
		return
	}
	s.pool.dispatch(bridge.ScriptMessage{
		Surface: s.id,
		Body:    []byte(C.GoString(json)),
	})
}

//export goInlayScriptDone
func goInlayScriptDone(seq C.ulong, json *C.char) {
	if fn := takePending(uint64(seq)); fn != nil {
		fn([]byte(C.GoString(json)), nil)
	}
}

//export goInlayScriptFailed
func goInlayScriptFailed(seq C.ulong, message *C.char) {
	if fn := takePending(uint64(seq)); fn != nil {
		fn(nil, errors.New(C.GoString(message)))
	}
}

//export goInlayKeyPressed
func goInlayKeyPressed(id C.ulong, keyval, keycode, state C.uint) C.int {
	s := lookupSurface(id)
	if s == nil {
		return 0
	}
	s.pool.dispatchKey(s.id, port.KeyEvent{
		Keyval:    uint(keyval),
		Keycode:   uint(keycode),
		Modifiers: uint(state),
	})
	// The focus decision is asynchronous; the page keeps the event and a
	// later redirect re-dispatches it to the host frame.
	return 0
}

//export goInlayButton
func goInlayButton(id C.ulong, button C.uint, pressed C.int, x, y C.double) {
	s := lookupSurface(id)
	if s == nil {
		return
	}
	s.pool.dispatchMouse(s.id, port.MouseEvent{
		Button:  uint(button),
		Pressed: pressed != 0,
		X:       float64(x),
		Y:       float64(y),
	})
}
