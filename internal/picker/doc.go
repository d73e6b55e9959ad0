// Package picker implements the selection controller: the state machine that
// decides which food is currently shown and whether its nutrition panel is
// open.
//
// # States
//
//   - Idle: nothing selected
//   - Showing: a food is selected, nutrition panel closed
//   - ShowingWithNutrition: a food is selected, nutrition panel open
//
// Pick moves to a random food other than the current one, Reset returns to
// Idle from anywhere, and ToggleNutrition opens or closes the panel while a
// food is shown. Whether the panel stays open across Pick is decided by the
// controller's NutritionPolicy.
//
// # Observers
//
// Renderers subscribe to a Controller and receive a Snapshot after every
// operation. Notification is synchronous: all observers have run before the
// operation returns to its caller.
//
//	ctrl := picker.New(food.Default(), picker.WithSeed(42))
//	unsubscribe := ctrl.Subscribe(func(s picker.Snapshot) {
//	    fmt.Println(s.State(), s.Selected)
//	})
//	defer unsubscribe()
//
//	if _, err := ctrl.Pick(); err != nil {
//	    return err
//	}
//
// A Controller is not safe for concurrent use. It is meant to be driven from
// a single event loop.
package picker
