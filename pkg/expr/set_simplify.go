package expr

func (e *EmptySetV) Simplify() Set     { return &EmptySetV{} }
func (u *UniversalSetV) Simplify() Set { return &UniversalSetV{} }

func (u *UnionSet) Simplify() Set {
	var flat []Set
	for _, s := range u.Sets {
		ss := s.Simplify()
		switch v := ss.(type) {
		case *UnionSet:
			flat = append(flat, v.Sets...)
		case *UniversalSetV:
			return &UniversalSetV{}
		case *EmptySetV:
			continue
		default:
			flat = append(flat, ss)
		}
	}
	switch len(flat) {
	case 0:
		return &EmptySetV{}
	case 1:
		return flat[0]
	default:
		return &UnionSet{Sets: flat}
	}
}

func (i *IntersectionSet) Simplify() Set {
	var flat []Set
	for _, s := range i.Sets {
		ss := s.Simplify()
		switch v := ss.(type) {
		case *IntersectionSet:
			flat = append(flat, v.Sets...)
		case *EmptySetV:
			return &EmptySetV{}
		case *UniversalSetV:
			continue
		default:
			flat = append(flat, ss)
		}
	}
	switch len(flat) {
	case 0:
		return &UniversalSetV{}
	case 1:
		return flat[0]
	default:
		return &IntersectionSet{Sets: flat}
	}
}

func (c *ComparisonSet) Simplify() Set {
	diff := (&Sum{Terms: []Node{c.Left, &Neg{X: c.Right}}}).Simplify()
	if cn, ok := diff.(*Const); ok {
		if c.Op.apply(cn.Val) {
			return &UniversalSetV{}
		}
		return &EmptySetV{}
	}
	return &ComparisonSet{Left: c.Left, Right: c.Right, Op: c.Op}
}

func (iv *IntervalSet) Simplify() Set {
	if iv.Lower > iv.Upper {
		return &EmptySetV{}
	}
	if iv.Lower == iv.Upper && !(iv.LowerIncl && iv.UpperIncl) {
		return &EmptySetV{}
	}
	return &IntervalSet{Variable: iv.Variable, Lower: iv.Lower, Upper: iv.Upper,
		LowerIncl: iv.LowerIncl, UpperIncl: iv.UpperIncl}
}
