package domain

import "testing"

func TestParseActionIsCaseSensitive(t *testing.T) {
	if got := ParseAction("Forward"); got != ActionForward {
		t.Errorf("ParseAction(Forward) = %v", got)
	}
	if got := ParseAction("forward"); got != ActionUnknown {
		t.Errorf("регистр должен иметь значение: %v", got)
	}
	if got := ParseAction("Connect_nbr"); got != ActionConnectNbr {
		t.Errorf("ParseAction(Connect_nbr) = %v", got)
	}
}

func TestActionDurations(t *testing.T) {
	cases := map[ActionType]int{
		ActionForward:     7,
		ActionRight:       7,
		ActionLeft:        7,
		ActionLook:        7,
		ActionInventory:   1,
		ActionBroadcast:   7,
		ActionConnectNbr:  0,
		ActionFork:        42,
		ActionEject:       7,
		ActionTake:        7,
		ActionSet:         7,
		ActionIncantation: 300,
	}
	for a, want := range cases {
		if got := a.Duration(); got != want {
			t.Errorf("%v.Duration() = %d, ожидалось %d", a, got, want)
		}
	}
}

func TestPendingActionDue(t *testing.T) {
	p := &PendingAction{Kind: ActionForward, IssuedAt: 10, Duration: 7}

	if p.Due(16) {
		t.Error("действие сработало раньше срока")
	}
	if !p.Due(17) {
		t.Error("действие не сработало на тике дедлайна")
	}
	if !p.Due(30) {
		t.Error("просроченное действие обязано сработать")
	}
}

func TestResourceNames(t *testing.T) {
	r, ok := ResourceFromName("thystame")
	if !ok || r != Thystame {
		t.Errorf("ResourceFromName(thystame) = %v, %v", r, ok)
	}
	if _, ok := ResourceFromName("gold"); ok {
		t.Error("неизвестное имя ресурса принято")
	}
	if Linemate.String() != "linemate" {
		t.Errorf("String() = %q", Linemate.String())
	}
}
