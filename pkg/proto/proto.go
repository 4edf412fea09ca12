// Package proto - словарь текстового протокола Zappy.
// Здесь собраны все ответы и нотификации, которые сервер пишет в сокеты,
// чтобы форматы не расползались по движку.
package proto

import (
	"fmt"
	"strings"

	"zappy-server/internal/domain"
)

// Фиксированные ответы
const (
	Welcome           = "WELCOME"
	OK                = "ok"
	KO                = "ko"
	Dead              = "dead"
	Suc               = "suc" // неизвестная GUI-команда
	Sbp               = "sbp" // плохой параметр GUI-команды
	ElevationUnderway = "Elevation underway"

	// GraphicTeam - имя, которым представляется наблюдатель
	GraphicTeam = "GRAPHIC"
)

// --- ОТВЕТЫ AI-КЛИЕНТУ ---

// Slots - первая строка ответа на аутентификацию команды
func Slots(n int) string {
	return fmt.Sprintf("%d", n)
}

// MapSize - вторая строка ответа на аутентификацию команды
func MapSize(w, h int) string {
	return fmt.Sprintf("%d %d", w, h)
}

// Inventory сериализует инвентарь для одноименной команды
func Inventory(inv [domain.ResourceCount]int) string {
	parts := make([]string, domain.ResourceCount)
	for r := 0; r < domain.ResourceCount; r++ {
		parts[r] = fmt.Sprintf("%s %d", domain.Resource(r), inv[r])
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Look сериализует список клеток конуса зрения
func Look(tiles []string) string {
	return "[" + strings.Join(tiles, ",") + "]"
}

// Message - звук, услышанный AI-клиентом
func Message(dir int, text string) string {
	return fmt.Sprintf("message %d, %s", dir, text)
}

// Eject - уведомление вытолкнутому игроку
func Eject(dir int) string {
	return fmt.Sprintf("eject: %d", dir)
}

// CurrentLevel - успешное завершение инкантации
func CurrentLevel(level int) string {
	return fmt.Sprintf("Current level: %d", level)
}

// ConnectNbr - ответ на Connect_nbr
func ConnectNbr(slots int) string {
	return fmt.Sprintf("%d", slots)
}

// --- СТРОКИ GUI-ПРОТОКОЛА ---

func Msz(w, h int) string {
	return fmt.Sprintf("msz %d %d", w, h)
}

func Bct(x, y int, res [domain.ResourceCount]int) string {
	return fmt.Sprintf("bct %d %d %d %d %d %d %d %d %d",
		x, y, res[0], res[1], res[2], res[3], res[4], res[5], res[6])
}

func Tna(name string) string {
	return fmt.Sprintf("tna %s", name)
}

func Pnw(id, x, y int, o domain.Orientation, level int, team string) string {
	return fmt.Sprintf("pnw #%d %d %d %d %d %s", id, x, y, int(o), level, team)
}

func Ppo(id, x, y int, o domain.Orientation) string {
	return fmt.Sprintf("ppo #%d %d %d %d", id, x, y, int(o))
}

func Plv(id, level int) string {
	return fmt.Sprintf("plv #%d %d", id, level)
}

func Pin(id, x, y int, inv [domain.ResourceCount]int) string {
	return fmt.Sprintf("pin #%d %d %d %d %d %d %d %d %d %d",
		id, x, y, inv[0], inv[1], inv[2], inv[3], inv[4], inv[5], inv[6])
}

func Pex(id int) string {
	return fmt.Sprintf("pex #%d", id)
}

func Pbc(id int, text string) string {
	return fmt.Sprintf("pbc #%d %s", id, text)
}

// Pic - начало инкантации со списком участников
func Pic(x, y, level int, playerIDs []int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pic %d %d %d", x, y, level)
	for _, id := range playerIDs {
		fmt.Fprintf(&sb, " #%d", id)
	}
	return sb.String()
}

func Pie(x, y, result int) string {
	return fmt.Sprintf("pie %d %d %d", x, y, result)
}

func Pfk(id int) string {
	return fmt.Sprintf("pfk #%d", id)
}

func Pdr(id int, r domain.Resource) string {
	return fmt.Sprintf("pdr #%d %d", id, int(r))
}

func Pgt(id int, r domain.Resource) string {
	return fmt.Sprintf("pgt #%d %d", id, int(r))
}

func Pdi(id int) string {
	return fmt.Sprintf("pdi #%d", id)
}

func Enw(eggID, playerID, x, y int) string {
	return fmt.Sprintf("enw #%d #%d %d %d", eggID, playerID, x, y)
}

func Ebo(eggID int) string {
	return fmt.Sprintf("ebo #%d", eggID)
}

func Edi(eggID int) string {
	return fmt.Sprintf("edi #%d", eggID)
}

func Sgt(freq int) string {
	return fmt.Sprintf("sgt %d", freq)
}

func Sst(freq int) string {
	return fmt.Sprintf("sst %d", freq)
}

func Seg(team string) string {
	return fmt.Sprintf("seg %s", team)
}
