// verify_figure - 机器人骨架验证程序
// 无头模式验证关节限位、幂等性与死亡冻结；图形模式下
// 用键盘驱动关节并以线框方式绘制骨架
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/decker502/robostage/internal/rig"
	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ========== 验证报告结构 ==========

type ValidationReport struct {
	TestName string
	Passed   bool
	Message  string
}

var validationReports []ValidationReport

func addReport(testName string, passed bool, message string) {
	validationReports = append(validationReports, ValidationReport{
		TestName: testName,
		Passed:   passed,
		Message:  message,
	})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-30s | %s", status, testName, message)
}

// ========== 验证函数 ==========

// validateProportions 验证比例计算的确定性与关键比率
func validateProportions() {
	p := rig.Measure(rig.DefaultHeight, rig.DefaultWidth)
	q := rig.Measure(rig.DefaultHeight, rig.DefaultWidth)
	if p != q {
		addReport("比例计算", false, "同一输入得到不同结果")
		return
	}
	wantLeg := rig.DefaultHeight * 0.7619
	if math.Abs(p.LegHeight-wantLeg) > 1e-9 {
		addReport("比例计算", false,
			fmt.Sprintf("腿高 %.4f, 期望 %.4f", p.LegHeight, wantLeg))
		return
	}
	addReport("比例计算", true,
		fmt.Sprintf("腿高=%.4f 头半径=%.4f", p.LegHeight, p.HeadRadius))
}

// validateClamps 验证三个关节的钳位边界
func validateClamps(f *rig.Figure) {
	f.SetHeadRotation(99999)
	if f.HeadAngle() != rig.HeadMaxDeg {
		addReport("头部钳位", false, fmt.Sprintf("得到 %.2f", f.HeadAngle()))
		return
	}
	f.SetHeadRotation(-99999)
	if f.HeadAngle() != rig.HeadMinDeg {
		addReport("头部钳位", false, fmt.Sprintf("得到 %.2f", f.HeadAngle()))
		return
	}
	addReport("头部钳位", true, fmt.Sprintf("[%.0f, %.0f]", rig.HeadMinDeg, rig.HeadMaxDeg))

	f.SetBodyRotation(180)
	f.SetBodyRotation(-180)
	if f.BodyAngle() != rig.BodyMinDeg {
		addReport("身体钳位", false, fmt.Sprintf("得到 %.2f", f.BodyAngle()))
	} else {
		addReport("身体钳位", true, fmt.Sprintf("[%.0f, %.0f]", rig.BodyMinDeg, rig.BodyMaxDeg))
	}

	f.SetLegStretch(5.0)
	if f.LegStretch() != rig.StretchMax {
		addReport("腿部拉伸钳位", false, fmt.Sprintf("得到 %.2f", f.LegStretch()))
	} else {
		addReport("腿部拉伸钳位", true, fmt.Sprintf("[%.2f, %.2f]", rig.StretchMin, rig.StretchMax))
	}
}

// validateIdempotence 验证重复设置同一姿态不改变最终状态
func validateIdempotence(f *rig.Figure) {
	f.SetLegStretch(1.1)
	once := f.Shoulder(rig.SideLeft).Position[1]
	f.SetLegStretch(1.1)
	twice := f.Shoulder(rig.SideLeft).Position[1]
	if once != twice {
		addReport("姿态幂等性", false,
			fmt.Sprintf("一次 %.6f, 两次 %.6f", once, twice))
		return
	}
	addReport("姿态幂等性", true, fmt.Sprintf("肩高 %.4f", once))
}

// validateDeadGating 验证死亡后的运动冻结与能量透支保留
func validateDeadGating() {
	f := rig.New(rig.Config{})
	f.ApplyDamage(rig.MaxEnergy + 50)
	if f.Alive() {
		addReport("死亡冻结", false, "超额伤害后仍存活")
		return
	}
	if f.Energy() != -50 {
		addReport("死亡冻结", false,
			fmt.Sprintf("能量 %.1f, 期望 -50（透支保留）", f.Energy()))
		return
	}
	before := f.HeadAngle()
	f.SetHeadRotation(45)
	f.Heal(200)
	if f.HeadAngle() != before || f.Alive() || f.Energy() != -50 {
		addReport("死亡冻结", false, "死亡后运动或治疗未被拒绝")
		return
	}
	addReport("死亡冻结", true, "运动与治疗均被拒绝，能量保持 -50")
}

// validateTreeShape 验证部件树节点数与命名槽位
func validateTreeShape(f *rig.Figure) {
	count := f.Root().Count()
	if count != 10 {
		addReport("部件树结构", false, fmt.Sprintf("%d 个节点, 期望 10", count))
		return
	}
	for _, name := range []string{"head", "body", "leftFemur", "rightShoulder", "eye"} {
		if f.Root().Find(name) == nil {
			addReport("部件树结构", false, fmt.Sprintf("缺少节点 %s", name))
			return
		}
	}
	addReport("部件树结构", true, fmt.Sprintf("%d 个节点, 槽位齐全", count))
}

// ========== 图形界面游戏循环 ==========

type VerificationGame struct {
	figure    *rig.Figure
	projector *utils.Projector

	headDeg    float64
	bodyDeg    float64
	legStretch float64
}

func (g *VerificationGame) Update() error {
	const degPerFrame = 1.5
	const stretchPerFrame = 0.005

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.headDeg -= degPerFrame
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.headDeg += degPerFrame
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.bodyDeg -= degPerFrame
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.bodyDeg += degPerFrame
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		g.legStretch -= stretchPerFrame
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		g.legStretch += stretchPerFrame
	}

	// D / H 施加伤害与治疗
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.figure.ApplyDamage(30)
		log.Printf("[VerifyFigure] damage 30, energy=%.1f alive=%v",
			g.figure.Energy(), g.figure.Alive())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.figure.Heal(20)
		log.Printf("[VerifyFigure] heal 20, energy=%.1f", g.figure.Energy())
	}

	g.figure.SetHeadRotation(g.headDeg)
	g.figure.SetBodyRotation(g.bodyDeg)
	g.figure.SetLegStretch(g.legStretch)

	// 钳位后的实际值回写，驱动量不会越过限位累积
	g.headDeg = g.figure.HeadAngle()
	g.bodyDeg = g.figure.BodyAngle()
	g.legStretch = g.figure.LegStretch()

	return nil
}

func (g *VerificationGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 28, 36, 255})

	lineColor := color.RGBA{120, 220, 160, 255}
	if !g.figure.Alive() {
		lineColor = color.RGBA{220, 90, 90, 255}
	}
	drawWireframe(screen, g.figure.Root(), g.projector, lineColor)

	info := "=== 骨架验证 ===\n"
	info += fmt.Sprintf("头部: %.1f° [%g, %g]\n", g.figure.HeadAngle(), rig.HeadMinDeg, rig.HeadMaxDeg)
	info += fmt.Sprintf("身体: %.1f° [%g, %g]\n", g.figure.BodyAngle(), rig.BodyMinDeg, rig.BodyMaxDeg)
	info += fmt.Sprintf("拉伸: %.3f [%g, %g]\n", g.figure.LegStretch(), rig.StretchMin, rig.StretchMax)
	info += fmt.Sprintf("能量: %.1f / %.0f  存活: %v\n", g.figure.Energy(), rig.MaxEnergy, g.figure.Alive())
	info += "\n操作:\n"
	info += "  ← → : 头部旋转\n"
	info += "  ↑ ↓ : 身体俯仰\n"
	info += "  Z X : 腿部拉伸\n"
	info += "  D H : 伤害 / 治疗\n"

	passCount := 0
	for _, r := range validationReports {
		if r.Passed {
			passCount++
		}
	}
	info += fmt.Sprintf("\n验证: 通过 %d/%d 项", passCount, len(validationReports))

	ebitenutil.DebugPrint(screen, info)
}

func (g *VerificationGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// drawWireframe 沿父子关系画骨骼连线，并在每个节点画一个小十字
func drawWireframe(screen *ebiten.Image, root *scenegraph.Node, proj *utils.Projector, c color.Color) {
	root.Walk(func(n *scenegraph.Node) bool {
		x, y, ok := proj.ProjectNodeOrigin(n)
		if !ok {
			return true
		}
		vector.StrokeLine(screen, float32(x-3), float32(y), float32(x+3), float32(y), 1, c, false)
		vector.StrokeLine(screen, float32(x), float32(y-3), float32(x), float32(y+3), 1, c, false)

		if p := n.Parent(); p != nil {
			px, py, pok := proj.ProjectNodeOrigin(p)
			if pok {
				vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1.5, c, false)
			}
		}
		return true
	})
}

// ========== 主函数 ==========

func main() {
	runGUI := flag.Bool("gui", true, "是否运行图形界面")
	height := flag.Float64("height", rig.DefaultHeight, "机器人总高")
	width := flag.Float64("width", rig.DefaultWidth, "机器人总宽")
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ltime)

	log.Printf("====== 骨架验证 ======")
	log.Printf("尺寸: %.1f x %.1f", *height, *width)
	log.Println()

	figure := rig.New(rig.Config{Height: *height, Width: *width})

	log.Println(">>> 步骤 1: 比例计算")
	validateProportions()

	log.Println("\n>>> 步骤 2: 部件树结构")
	validateTreeShape(figure)

	log.Println("\n>>> 步骤 3: 关节钳位")
	validateClamps(figure)

	log.Println("\n>>> 步骤 4: 姿态幂等性")
	validateIdempotence(figure)

	log.Println("\n>>> 步骤 5: 死亡冻结")
	validateDeadGating()

	printFinalReport()

	if !*runGUI {
		failCount := 0
		for _, r := range validationReports {
			if !r.Passed {
				failCount++
			}
		}
		if failCount > 0 {
			os.Exit(1)
		}
		return
	}

	// 图形模式使用全新骨架，避免无头验证留下的姿态
	log.Println("\n>>> 步骤 6: 启动图形界面")
	viewFigure := rig.New(rig.Config{Height: *height, Width: *width})

	cam := scenegraph.Camera{
		FOV:      45,
		Near:     0.1,
		Far:      500,
		Position: mgl64.Vec3{0, *height * 0.9, *height * 2.2},
		LookAt:   mgl64.Vec3{0, *height * 0.55, 0},
	}

	game := &VerificationGame{
		figure:     viewFigure,
		projector:  utils.NewProjector(cam, config.WindowWidth, config.WindowHeight),
		legStretch: rig.StretchMin,
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("骨架验证")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func printFinalReport() {
	log.Println("\n========================================")
	log.Println("         验证报告摘要")
	log.Println("========================================")

	passCount := 0
	for _, r := range validationReports {
		status := "✗"
		if r.Passed {
			status = "✓"
			passCount++
		}
		log.Printf("%s | %-30s | %s", status, r.TestName, r.Message)
	}

	log.Println("========================================")
	log.Printf("总计: %d 通过, %d 失败", passCount, len(validationReports)-passCount)
	log.Println("========================================")
}
