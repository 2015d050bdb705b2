// Package router binds physical input to slide navigation.
//
// The router knows nothing about SDL, evdev or terminals. Hosts translate
// their events into the router's vocabulary (abstract keys, touch
// positions, wheel deltas, button and indicator clicks) and the router
// applies the per-channel rules before calling the navigator.
//
// # Channels
//
//	Keys    ArrowRight/ArrowDown/Space go forward, ArrowLeft/ArrowUp go
//	        back, Home jumps to the first slide, End to the last.
//	Touch   A vertical swipe longer than 50 units navigates; swiping up
//	        goes forward.
//	Wheel   One tick navigates, then the wheel is ignored for 500ms.
//	Clicks  Prev/next buttons and indicator dots.
//
// # Basic Usage
//
//	r := router.New(navigator, timeline)
//	r.Bind(constants.KeyHome, router.ActionNone) // unbind Home
//
//	for event := range events {
//	    switch e := event.(type) {
//	    case KeyEvent:
//	        if r.HandleKey(e.Key) {
//	            e.PreventDefault()
//	        }
//	    case WheelEvent:
//	        r.Wheel(e.DeltaY)
//	    }
//	}
//
// The router never serializes transitions itself. Two channels firing at
// once both reach the navigator, whose transition latch drops the second.
package router
