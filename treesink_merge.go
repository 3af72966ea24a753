package gohocon

import "sort"

// mergeObject runs the full post-processing pipeline on one object's
// entries — sort, then duplicate-key merge, then recurse into any
// child object/array values — implementing §4.4 steps 1–3. It is called
// once per obj_end, innermost containers closing (and therefore being
// post-processed) before their parents.
func mergeObject(o *Object) *Object {
	o.Sort()
	o.MergeKeys()
	for i := range o.Entries {
		o.Entries[i].Value = mergeValue(o.Entries[i].Value)
	}
	return o
}

func mergeValue(v Value) Value {
	switch {
	case v.IsObject():
		return ObjectValue(mergeObject(v.Obj))
	case v.IsArray():
		for i, elem := range v.Arr.Elems {
			v.Arr.Elems[i] = mergeValue(elem)
		}
		return v
	default:
		return v
	}
}

// Sort stably orders an object's entries by (key, original index), byte
// comparison of the key (Go's native string comparison is already a
// byte-wise memcmp with length as the tiebreaker on an equal-prefix
// pair, matching §4.4 step 1 exactly).
func (o *Object) Sort() {
	sort.SliceStable(o.Entries, func(i, j int) bool {
		a, b := o.Entries[i], o.Entries[j]
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.OriginalIndex < b.OriginalIndex
	})
}

// MergeKeys performs a single left-to-right scan of an already-sorted
// entry sequence, collapsing adjacent entries with equal keys per §4.4
// step 2: Append concatenates, Assign overwrites (or deep-merges, if
// both sides are objects).
func (o *Object) MergeKeys() {
	if len(o.Entries) == 0 {
		return
	}
	out := o.Entries[:1]
	for i := 1; i < len(o.Entries); i++ {
		curr := o.Entries[i]
		prev := &out[len(out)-1]
		if curr.Key != prev.Key {
			out = append(out, curr)
			continue
		}
		if curr.Mode == Append {
			prev.Value = concatValues(prev.Value, curr.Value)
		} else {
			prev.Value = overwriteValue(prev.Value, curr.Value)
		}
	}
	o.Entries = out
}

// concatValues implements val_concat: arrays concatenate element-wise,
// objects merge, and anything else (including a scalar/Unresolved pair)
// concatenates as a single unresolved token sequence, left-to-right.
func concatValues(prev, curr Value) Value {
	switch {
	case prev.IsArray() && curr.IsArray():
		merged := NewArray()
		merged.Elems = append(merged.Elems, prev.Arr.Elems...)
		merged.Elems = append(merged.Elems, curr.Arr.Elems...)
		return ArrayValue(merged)
	case prev.IsObject() && curr.IsObject():
		return ObjectValue(MergeObjects(prev.Obj, curr.Obj))
	default:
		toks := make([]Token, 0, len(prev.Tokens)+len(curr.Tokens))
		toks = append(toks, prev.Tokens...)
		toks = append(toks, curr.Tokens...)
		return UnresolvedValue(toks)
	}
}

// overwriteValue implements val_overwrite: if both sides are objects,
// the HOCON invariant is a recursive deep merge (later overrides earlier
// at the leaf); otherwise curr replaces prev outright.
func overwriteValue(prev, curr Value) Value {
	if prev.IsObject() && curr.IsObject() {
		return ObjectValue(MergeObjects(prev.Obj, curr.Obj))
	}
	return curr
}

// MergeObjects merges two already-sorted entry lists into one, sorted,
// duplicate-containing sequence, then collapses duplicates — the
// behavior §4.4 describes as obj_merge (preserve order across both
// lists) immediately followed by the caller's obj_merge_keys pass. Both
// steps are performed here since every call site immediately wants the
// fully-merged result. from's Entries are left empty; into is not
// modified.
func MergeObjects(into, from *Object) *Object {
	merged := NewObject()
	merged.Entries = make([]ObjectEntry, 0, len(into.Entries)+len(from.Entries))
	merged.Entries = append(merged.Entries, into.Entries...)
	merged.Entries = append(merged.Entries, from.Entries...)
	from.Entries = nil
	merged.Sort()
	merged.MergeKeys()
	return merged
}
