package script

import (
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/voxel"
	"github.com/sirupsen/logrus"
)

// buildEngine exposes the owner to scripts as the first hook argument.
func buildEngine(owner mode.Owner, log logrus.FieldLogger) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["get_block"] = &tengo.UserFunction{Name: "get_block", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, ok := argPos(args)
		if !ok {
			return &tengo.String{Value: string(voxel.Air)}, nil
		}
		return &tengo.String{Value: string(owner.World().Block(p))}, nil
	}}

	values["set_block"] = &tengo.UserFunction{Name: "set_block", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, ok := argPos(args)
		if !ok || len(args) < 4 {
			return tengo.FalseValue, nil
		}
		owner.World().SetBlock(p, voxel.Block(strings.TrimSpace(objectAsString(args[3]))))
		return tengo.TrueValue, nil
	}}

	values["light"] = &tengo.UserFunction{Name: "light", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, ok := argPos(args)
		if !ok {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(owner.World().Light(p))}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y, z := owner.Position()
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}, &tengo.Float{Value: z}}}, nil
	}}

	values["target_tile"] = &tengo.UserFunction{Name: "target_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p := owner.TargetTile()
		return &tengo.Array{Value: []tengo.Object{&tengo.Int{Value: int64(p.X)}, &tengo.Int{Value: int64(p.Y)}, &tengo.Int{Value: int64(p.Z)}}}, nil
	}}

	values["move_to"] = &tengo.UserFunction{Name: "move_to", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return tengo.FalseValue, nil
		}
		x, okX := objectAsFloat(args[0])
		y, okY := objectAsFloat(args[1])
		z, okZ := objectAsFloat(args[2])
		if !okX || !okY || !okZ {
			return tengo.FalseValue, nil
		}
		if owner.Navigator().TryMoveTo(x, y, z, mode.DefaultSpeed) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["clear_path"] = &tengo.UserFunction{Name: "clear_path", Value: func(args ...tengo.Object) (tengo.Object, error) {
		owner.Navigator().ClearPath()
		return tengo.UndefinedValue, nil
	}}

	values["bloodsuck"] = &tengo.UserFunction{Name: "bloodsuck", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) > 0 {
			owner.SetBloodsuck(!args[0].IsFalsy())
		}
		if owner.IsBloodsuck() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["count"] = &tengo.UserFunction{Name: "count", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(owner.Inventory().Count(objectAsString(args[0])))}, nil
	}}

	values["give"] = &tengo.UserFunction{Name: "give", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return &tengo.Int{Value: 0}, nil
		}
		n := 1
		if len(args) > 1 {
			if v, ok := objectAsInt(args[1]); ok {
				n = v
			}
		}
		left := owner.Inventory().Add(item.Stack{ID: objectAsString(args[0]), Count: n})
		return &tengo.Int{Value: int64(left)}, nil
	}}

	values["first_slot"] = &tengo.UserFunction{Name: "first_slot", Value: func(args ...tengo.Object) (tengo.Object, error) {
		inv := owner.Inventory()
		if inv == nil || len(inv.Slots) == 0 {
			return &tengo.String{Value: ""}, nil
		}
		return &tengo.String{Value: inv.Slots[0].ID}, nil
	}}

	values["switch_mode"] = &tengo.UserFunction{Name: "switch_mode", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		id, ok := objectAsInt(args[0])
		if !ok || !owner.SetMode(mode.ID(id)) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Info(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func argPos(args []tengo.Object) (voxel.Pos, bool) {
	if len(args) < 3 {
		return voxel.Pos{}, false
	}
	x, okX := objectAsInt(args[0])
	y, okY := objectAsInt(args[1])
	z, okZ := objectAsInt(args[2])
	return voxel.Pos{X: x, Y: y, Z: z}, okX && okY && okZ
}
