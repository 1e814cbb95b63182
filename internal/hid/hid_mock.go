package hid

// MockDevice records control writes and serves canned (or computed)
// responses for tests.
type MockDevice struct {
	Sent       [][]byte
	Responses  [][]byte
	Respond    func(req []byte) []byte // takes precedence over Responses
	SendErr    error
	ReceiveErr error
}

func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

func (m *MockDevice) SendControl(data []byte) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.Sent = append(m.Sent, cp)
	return nil
}

func (m *MockDevice) ReceiveControl(length int) ([]byte, error) {
	if m.ReceiveErr != nil {
		return nil, m.ReceiveErr
	}
	if m.Respond != nil && len(m.Sent) > 0 {
		return m.Respond(m.Sent[len(m.Sent)-1]), nil
	}
	if len(m.Responses) > 0 {
		r := m.Responses[0]
		m.Responses = m.Responses[1:]
		return r, nil
	}
	return make([]byte, length), nil
}

func (m *MockDevice) Close() error { return nil }
