//go:build scenario

package game

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a scripted game built by a Lua file: deck lists plus an
// ordered list of action and expectation steps.
type Scenario struct {
	Name  string
	Steps []Step
}

type Step struct {
	Kind string
	Args map[string]any
}

func loadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerLuaTypes(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerLuaTypes(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "overlord_deck", Function: scenarioOverlordDeck},
	{Name: "champion_deck", Function: scenarioChampionDeck},
	{Name: "draw", Function: scenarioDraw},
	{Name: "gain_mana", Function: scenarioGainMana},
	{Name: "play", Function: scenarioPlay},
	{Name: "end_turn", Function: scenarioEndTurn},
	{Name: "raid", Function: scenarioRaid},
	{Name: "activate_room", Function: scenarioActivateRoom},
	{Name: "pass_activation", Function: scenarioPassActivation},
	{Name: "use_weapon", Function: scenarioUseWeapon},
	{Name: "retreat", Function: scenarioRetreat},
	{Name: "expect_mana", Function: scenarioExpectMana},
	{Name: "expect_score", Function: scenarioExpectScore},
	{Name: "expect_hand", Function: scenarioExpectHand},
	{Name: "expect_raid_over", Function: scenarioExpectRaidOver},
	{Name: "expect_error", Function: scenarioExpectError},
}

func scenarioOverlordDeck(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	appendStep(scenario, "overlord_deck", map[string]any{"cards": tableToGo(state, 2)})
	return 0
}

func scenarioChampionDeck(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	appendStep(scenario, "champion_deck", map[string]any{"cards": tableToGo(state, 2)})
	return 0
}

func scenarioDraw(state *lua.State) int {
	scenario := checkScenario(state)
	side := lua.CheckString(state, 2)
	appendStep(scenario, "draw", map[string]any{"side": side})
	return 0
}

func scenarioGainMana(state *lua.State) int {
	scenario := checkScenario(state)
	side := lua.CheckString(state, 2)
	appendStep(scenario, "gain_mana", map[string]any{"side": side})
	return 0
}

func scenarioPlay(state *lua.State) int {
	scenario := checkScenario(state)
	side := lua.CheckString(state, 2)
	card := lua.CheckString(state, 3)
	data := map[string]any{"side": side, "card": card}
	for key, value := range optionalTable(state, 4) {
		data[key] = value
	}
	appendStep(scenario, "play", data)
	return 0
}

func scenarioEndTurn(state *lua.State) int {
	scenario := checkScenario(state)
	side := lua.CheckString(state, 2)
	appendStep(scenario, "end_turn", map[string]any{"side": side})
	return 0
}

func scenarioRaid(state *lua.State) int {
	scenario := checkScenario(state)
	room := lua.CheckString(state, 2)
	appendStep(scenario, "raid", map[string]any{"room": room})
	return 0
}

func scenarioActivateRoom(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "activate_room", nil)
	return 0
}

func scenarioPassActivation(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "pass_activation", nil)
	return 0
}

func scenarioUseWeapon(state *lua.State) int {
	scenario := checkScenario(state)
	weapon := lua.CheckString(state, 2)
	appendStep(scenario, "use_weapon", map[string]any{"weapon": weapon})
	return 0
}

func scenarioRetreat(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "retreat", nil)
	return 0
}

func scenarioExpectMana(state *lua.State) int {
	scenario := checkScenario(state)
	side := lua.CheckString(state, 2)
	value := int(lua.CheckNumber(state, 3))
	appendStep(scenario, "expect_mana", map[string]any{"side": side, "value": value})
	return 0
}

func scenarioExpectScore(state *lua.State) int {
	scenario := checkScenario(state)
	side := lua.CheckString(state, 2)
	value := int(lua.CheckNumber(state, 3))
	appendStep(scenario, "expect_score", map[string]any{"side": side, "value": value})
	return 0
}

func scenarioExpectHand(state *lua.State) int {
	scenario := checkScenario(state)
	side := lua.CheckString(state, 2)
	value := int(lua.CheckNumber(state, 3))
	appendStep(scenario, "expect_hand", map[string]any{"side": side, "value": value})
	return 0
}

func scenarioExpectRaidOver(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "expect_raid_over", nil)
	return 0
}

func scenarioExpectError(state *lua.State) int {
	scenario := checkScenario(state)
	code := lua.CheckString(state, 2)
	appendStep(scenario, "expect_error", map[string]any{"code": code})
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) int {
	if scenario == nil {
		return -1
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
	return len(scenario.Steps) - 1
}

func optionalTable(state *lua.State, index int) map[string]any {
	if state.IsNoneOrNil(index) || state.TypeOf(index) != lua.TypeTable {
		return map[string]any{}
	}
	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	case lua.TypeUserData:
		return state.ToUserData(index)
	default:
		return nil
	}
}

func tableToGo(state *lua.State, index int) any {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
