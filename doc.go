// Package ranged is a ranged pointer interaction controller for a handheld
// tracked device.
//
// A [Controller] owns the selected tool and the composite interaction state.
// The host feeds it discrete input edges (trigger, grip, touchpad) and calls
// [Controller.Tick] once per simulation step; the controller queries its
// [World] through a pointer ray, spawns transient visuals on its [Stage],
// drives [Haptics], and reports resolved selections to a [SelectionSink] as
// sorted index batches.
//
// # Quick start
//
//	demo := ranged.BuildDemoScene()
//	rig := ranged.NewRig(demo.Eye, ranged.Vec3{0, -1, 0})
//	sel := ranged.NewSelectionSet()
//	sel.Track(demo.Shapes...)
//
//	c := ranged.NewController(ranged.Options{
//		World:   demo.Scene,
//		Stage:   demo.Scene,
//		Sink:    sel,
//		Device:  rig,
//		Surface: demo.Surface,
//	})
//	c.Enable()
//	c.SetSelectedTool(ranged.ToolLassoSelection)
//
//	// every frame:
//	rig.AimAt(target)
//	c.Tick(1.0 / 60)
//
// # Tools
//
// Four tools are available, one at a time:
//
//   - [ToolRangedBrush] sweeps a sphere along the pointer hit and selects
//     every shape it touches. The touchpad resizes it.
//   - [ToolLassoSelection] draws a path on the selection surface; once the
//     path returns near its start it closes and everything inside is
//     selected on release.
//   - [ToolRectangleSelection] drags a rectangle on the surface and selects
//     the shapes in the box above it.
//   - [ToolRangedInteraction] clicks UI elements and pulls [TagPullable]
//     entities toward the device.
//
// Trigger presses select and grip presses deselect. A trigger press on a UI
// element always runs ranged interaction, whatever the selected tool.
//
// # Reference world
//
// [Scene] and [Entity] form a small 3D scene graph with box and sphere
// colliders. Scene implements both World and Stage, which is enough for the
// sandbox in cmd/ranged-sandbox and for tests. Scripted sessions ([Script],
// [Runner]) replay input against it tick by tick.
//
// The ebitenhost package renders a Scene top-down with Ebitengine and maps
// gamepad, mouse and keyboard input onto the controller.
package ranged
