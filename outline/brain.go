package outline

import "github.com/lixenwraith/brainwave/vmath"

// brainPoints traces a side view of a brain, frontal lobe on the left, cerebellum lower right
// Spans roughly 290x220 local units centred near the origin, screen-down is +Y
var brainPoints = []vmath.Vec2{
	{-140, -5}, {-142, -15}, {-145, -25}, {-143, -35},
	{-138, -45}, {-135, -55}, {-132, -60}, {-128, -63},
	{-125, -75}, {-120, -80}, {-122, -88}, {-118, -95},
	{-110, -102}, {-100, -105}, {-95, -112}, {-85, -118},
	{-70, -120}, {-60, -124}, {-50, -127}, {-40, -128},
	{-25, -131}, {-10, -132}, {0, -130}, {10, -132},
	{25, -131}, {40, -128}, {50, -127}, {60, -124},
	{70, -120}, {85, -118}, {95, -112}, {100, -105},
	{110, -102}, {118, -95}, {122, -88}, {120, -80},
	{125, -70}, {130, -60}, {135, -50}, {140, -35},
	{142, -25}, {145, -15}, {145, 0}, {144, 10},
	{142, 20}, {138, 35}, {135, 45}, {130, 55},
	{125, 63}, {115, 70}, {108, 76}, {95, 80},
	{85, 84}, {70, 86}, {60, 85}, {50, 87},
	{40, 88}, {30, 86}, {20, 80}, {10, 79},
	{0, 78}, {-10, 75}, {-20, 78}, {-30, 80},
	{-40, 80}, {-50, 79}, {-60, 78}, {-75, 75},
	{-85, 72}, {-95, 65}, {-105, 60}, {-110, 55},
	{-118, 50}, {-125, 42}, {-130, 30}, {-135, 20},
	{-138, 10},
}
