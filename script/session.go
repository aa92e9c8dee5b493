package script

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/connect"
	"github.com/gregoryv/umd/diagram"
	"github.com/gregoryv/umd/drop"
)

// NewSession returns a session with an empty model using the default
// connector registry.
func NewSession() *Session {
	s := &Session{
		Model:    umd.NewModel(),
		Registry: connect.Default,
		Dropper:  drop.NewDropper(),
		Log:      log.New(io.Discard, "script ", log.Flags()),

		elements: make(map[string]*umd.Element),
		diagrams: make(map[string]*diagram.Diagram),
		items:    make(map[string]*diagram.Item),
	}
	s.Dropper.Registry = s.Registry
	return s
}

// Session is the outcome of replaying one script.
type Session struct {
	Model    *umd.Model
	Registry *connect.Registry
	Dropper  *drop.Dropper

	// OnEvent if set receives all model and diagram events
	OnEvent func(any)

	Log *log.Logger

	// Rejected holds connect steps refused by a connector, these
	// do not stop a run.
	Rejected []error

	elements map[string]*umd.Element
	diagrams map[string]*diagram.Diagram
	dorder   []string
	items    map[string]*diagram.Item
	iorder   []string
	lines    int
}

// Run replays the script on a new session.
func Run(s *Script) (*Session, error) {
	sess := NewSession()
	return sess, sess.Run(s)
}

// Run declares all elements and diagrams of s, then applies its
// steps in order. Run should only be called once per session.
func (s *Session) Run(script *Script) error {
	s.Model.OnEvent = s.OnEvent
	if err := s.declare(script.Elements); err != nil {
		return err
	}
	for _, d := range script.Diagrams {
		if err := s.addDiagram(d); err != nil {
			return err
		}
	}
	for i, st := range script.Steps {
		err := s.step(st)
		switch {
		case err == nil:

		case errors.Is(err, connect.ErrNotAllowed), errors.Is(err, connect.ErrRejected):
			err = fmt.Errorf("step %v %s: %w", i+1, st, err)
			s.Log.Print(err)
			s.Rejected = append(s.Rejected, err)

		default:
			return fmt.Errorf("step %v %s: %w", i+1, st, err)
		}
	}
	return nil
}

// Element returns the declared element or nil.
func (s *Session) Element(name string) *umd.Element { return s.elements[name] }

// Diagram returns the declared diagram or nil.
func (s *Session) Diagram(name string) *diagram.Diagram { return s.diagrams[name] }

// Item returns the item with the given label or nil.
func (s *Session) Item(label string) *diagram.Item { return s.items[label] }

func (s *Session) declare(decls []ElementDecl) error {
	kinds := make([]umd.Kind, len(decls))
	for i, d := range decls {
		k, found := umd.ParseKind(d.Kind)
		if !found {
			return fmt.Errorf("element %q kind %q: %w", d.Name, d.Kind, ErrUnknown)
		}
		kinds[i] = k
	}
	// relationships refer to other elements so they go last
	for i, d := range decls {
		if isRelationship(kinds[i]) {
			continue
		}
		if err := s.addElement(d.Name, s.Model.Create(kinds[i], d.Name)); err != nil {
			return err
		}
	}
	for i, d := range decls {
		if !isRelationship(kinds[i]) {
			continue
		}
		e, err := s.relationship(kinds[i], d)
		if err != nil {
			return fmt.Errorf("element %q: %w", d.Name, err)
		}
		e.Name = d.Name
		if err := s.addElement(d.Name, e); err != nil {
			return err
		}
	}
	for _, d := range decls {
		e := s.elements[d.Name]
		if e == nil {
			// unnamed relationship
			continue
		}
		if d.Action != "" {
			a, err := s.element(d.Action)
			if err != nil {
				return err
			}
			e.Action = a.ID
		}
		if err := s.setOwner(e, d.Owner); err != nil {
			return err
		}
	}
	return nil
}

func isRelationship(k umd.Kind) bool {
	for _, r := range []umd.Kind{
		umd.KindDependency, umd.KindGeneralization, umd.KindAssociation,
		umd.KindMessage,
	} {
		if k.IsA(r) {
			return true
		}
	}
	return false
}

func (s *Session) relationship(k umd.Kind, d ElementDecl) (*umd.Element, error) {
	switch {
	case k == umd.KindDependency:
		client, err := s.element(d.Client)
		if err != nil {
			return nil, err
		}
		supplier, err := s.element(d.Supplier)
		if err != nil {
			return nil, err
		}
		return umd.CreateDependency(client, supplier), nil

	case k == umd.KindGeneralization:
		specific, err := s.element(d.Specific)
		if err != nil {
			return nil, err
		}
		general, err := s.element(d.General)
		if err != nil {
			return nil, err
		}
		return umd.CreateGeneralization(specific, general), nil

	case k.IsA(umd.KindAssociation):
		if len(d.Ends) != 2 {
			return nil, fmt.Errorf("%v needs two ends: %w", k, ErrIncomplete)
		}
		a, err := s.element(d.Ends[0])
		if err != nil {
			return nil, err
		}
		b, err := s.element(d.Ends[1])
		if err != nil {
			return nil, err
		}
		if k == umd.KindExtension {
			return umd.CreateExtension(a, b), nil
		}
		return umd.CreateAssociation(a, b), nil

	case k == umd.KindMessage:
		send, err := s.optional(d.Send)
		if err != nil {
			return nil, err
		}
		receive, err := s.optional(d.Receive)
		if err != nil {
			return nil, err
		}
		if send == nil && receive == nil {
			return nil, fmt.Errorf("message needs a lifeline: %w", ErrIncomplete)
		}
		return umd.CreateMessage(s.Model, send, receive), nil
	}
	return nil, fmt.Errorf("%v: %w", k, ErrUnknown)
}

func (s *Session) setOwner(e *umd.Element, owner string) error {
	if owner == "" {
		return nil
	}
	o, err := s.element(owner)
	if err != nil {
		return err
	}
	if !umd.ChangeOwner(o, e) {
		return fmt.Errorf("%v cannot own %v", o, e)
	}
	return nil
}

func (s *Session) addElement(name string, e *umd.Element) error {
	if name == "" {
		return nil
	}
	if _, found := s.elements[name]; found {
		return fmt.Errorf("element %q: %w", name, ErrDuplicate)
	}
	s.elements[name] = e
	return nil
}

func (s *Session) addDiagram(decl DiagramDecl) error {
	if _, found := s.diagrams[decl.Name]; found {
		return fmt.Errorf("diagram %q: %w", decl.Name, ErrDuplicate)
	}
	e := s.Model.Create(umd.KindDiagram, decl.Name)
	if err := s.setOwner(e, decl.Owner); err != nil {
		return err
	}
	d := diagram.New(e)
	d.OnEvent = s.OnEvent
	s.diagrams[decl.Name] = d
	s.dorder = append(s.dorder, decl.Name)
	return nil
}

func (s *Session) step(st Step) error {
	d, err := s.diagram(st.Diagram)
	if err != nil {
		return err
	}
	switch st.Op {
	case "drop":
		e, err := s.element(st.Element)
		if err != nil {
			return err
		}
		var target diagram.Target = d
		if st.Into != "" {
			if target, err = s.item(st.Into); err != nil {
				return err
			}
		}
		it, err := s.Dropper.Drop(e, target, st.X, st.Y)
		if err != nil {
			return err
		}
		label := st.As
		if label == "" {
			label = st.Element
		}
		return s.label(label, it)

	case "contain":
		return s.line(d, diagram.ContainmentLine, st)

	case "link":
		k, found := diagram.ParseItemKind(st.Kind)
		if !found || !k.IsLine() {
			return fmt.Errorf("line kind %q: %w", st.Kind, ErrUnknown)
		}
		return s.line(d, k, st)

	case "connect":
		h, err := s.handle(st)
		if err != nil {
			return err
		}
		to, err := s.item(st.To)
		if err != nil {
			return err
		}
		return s.Registry.ConnectHandle(h, to)

	case "disconnect":
		h, err := s.handle(st)
		if err != nil {
			return err
		}
		s.Registry.DisconnectHandle(h)
		return nil

	case "remove":
		it, err := s.item(st.Item)
		if err != nil {
			return err
		}
		s.Registry.RemoveItem(it)
		s.unlabel(st.Item)
		return nil
	}
	return fmt.Errorf("%q: %w", st.Op, ErrBadStep)
}

// line creates a line item and connects its ends to the items
// labeled Head and Tail, if given.
func (s *Session) line(d *diagram.Diagram, k diagram.ItemKind, st Step) error {
	s.lines++
	label := st.As
	if label == "" {
		label = fmt.Sprintf("line%v", s.lines)
	}
	it := d.Create(k, nil)
	if err := s.label(label, it); err != nil {
		return err
	}
	ends := []struct {
		h     *diagram.Handle
		label string
	}{
		{it.Head, st.Head},
		{it.Tail, st.Tail},
	}
	for _, end := range ends {
		if end.label == "" {
			continue
		}
		target, err := s.item(end.label)
		if err != nil {
			return err
		}
		if err := s.Registry.ConnectHandle(end.h, target); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) handle(st Step) (*diagram.Handle, error) {
	line, err := s.item(st.Line)
	if err != nil {
		return nil, err
	}
	if !line.Kind.IsLine() {
		return nil, fmt.Errorf("%q is not a line: %w", st.Line, ErrBadStep)
	}
	end, err := diagram.ParseEnd(st.End)
	if err != nil {
		return nil, err
	}
	return line.Handle(end), nil
}

func (s *Session) label(label string, it *diagram.Item) error {
	if _, found := s.items[label]; found {
		return fmt.Errorf("item %q: %w", label, ErrDuplicate)
	}
	s.items[label] = it
	s.iorder = append(s.iorder, label)
	return nil
}

func (s *Session) unlabel(label string) {
	delete(s.items, label)
	for i, v := range s.iorder {
		if v == label {
			s.iorder = append(s.iorder[:i], s.iorder[i+1:]...)
			return
		}
	}
}

func (s *Session) element(name string) (*umd.Element, error) {
	if e, found := s.elements[name]; found {
		return e, nil
	}
	return nil, fmt.Errorf("element %q: %w", name, ErrUnknown)
}

func (s *Session) optional(name string) (*umd.Element, error) {
	if name == "" {
		return nil, nil
	}
	return s.element(name)
}

// diagram returns the named diagram, empty name means the first
// declared one.
func (s *Session) diagram(name string) (*diagram.Diagram, error) {
	if name == "" && len(s.dorder) > 0 {
		name = s.dorder[0]
	}
	if d, found := s.diagrams[name]; found {
		return d, nil
	}
	return nil, fmt.Errorf("diagram %q: %w", name, ErrUnknown)
}

func (s *Session) item(label string) (*diagram.Item, error) {
	if it, found := s.items[label]; found {
		return it, nil
	}
	return nil, fmt.Errorf("item %q: %w", label, ErrUnknown)
}
