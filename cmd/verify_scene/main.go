// verify_scene - 舞台场景验证程序
// 无头模式验证场景组装（节点、光源、相机、纹理引用）与帧循环推进；
// 图形模式下以环绕相机线框绘制整个合成场景
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	robostage "github.com/decker502/robostage"
	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/embedded"
	"github.com/decker502/robostage/pkg/game"
	"github.com/decker502/robostage/pkg/scenes"
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

// validateAssembly 验证场景树包含全部固定道具与机器人
func validateAssembly(stage *scenes.StageScene) {
	root := stage.Compose().Root
	missing := []string{}
	for _, name := range []string{"robot", "floor", "sky", "effects"} {
		if root.Find(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		addReport("场景组装", false, fmt.Sprintf("缺少节点: %v", missing))
		return
	}
	addReport("场景组装", true, fmt.Sprintf("共 %d 个节点", root.Count()))
}

// validateLighting 验证光源数量与相机参数来自舞台配置
func validateLighting(stage *scenes.StageScene) {
	scene := stage.Compose()
	if len(scene.Lights) == 0 {
		addReport("光源与相机", false, "场景没有光源")
		return
	}
	if scene.Camera.FOV <= 0 || scene.Camera.Far <= scene.Camera.Near {
		addReport("光源与相机", false,
			fmt.Sprintf("相机参数异常 fov=%.1f near=%.2f far=%.2f",
				scene.Camera.FOV, scene.Camera.Near, scene.Camera.Far))
		return
	}
	addReport("光源与相机", true,
		fmt.Sprintf("%d 个光源, fov=%.0f°", len(scene.Lights), scene.Camera.FOV))
}

// validateTextureRefs 验证场景里每个材质纹理ID都能在目录中解析
func validateTextureRefs(stage *scenes.StageScene) {
	catalog := stage.TextureCatalog()
	bad := []string{}
	stage.Compose().Root.Walk(func(n *scenegraph.Node) bool {
		if n.Material != nil && n.Material.TextureID != "" && !catalog.Has(n.Material.TextureID) {
			bad = append(bad, fmt.Sprintf("%s→%s", n.Name, n.Material.TextureID))
		}
		return true
	})
	if len(bad) > 0 {
		addReport("纹理引用", false, fmt.Sprintf("未解析: %v", bad))
		return
	}
	addReport("纹理引用", true, fmt.Sprintf("目录共 %d 项, 全部可解析", catalog.Count()))
}

// validateFrameLoop 空跑若干秒，验证姿势推进与危险源伤害都在发生
func validateFrameLoop(stage *scenes.StageScene) {
	startEnergy := stage.Figure().Energy()
	const dt = 1.0 / 60.0
	for i := 0; i < 60*10; i++ {
		stage.Update(dt)
	}
	gs := game.GetGameState()
	if gs.ElapsedTime < 9.9 {
		addReport("帧循环", false, fmt.Sprintf("会话时间 %.2f, 期望约 10s", gs.ElapsedTime))
		return
	}
	if stage.Figure().Energy() >= startEnergy {
		addReport("帧循环", false,
			fmt.Sprintf("10s 后能量 %.1f 未下降（危险源未生效）", stage.Figure().Energy()))
		return
	}
	addReport("帧循环", true,
		fmt.Sprintf("10s: 分数=%d 姿势=%d 能量=%.1f", gs.Score, gs.PoseIndex, stage.Figure().Energy()))
}

// ========== 图形界面游戏循环 ==========

type VerificationGame struct {
	stage *scenes.StageScene

	orbitAngle float64
	orbiting   bool
}

func (g *VerificationGame) Update() error {
	const dt = 1.0 / 60.0

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.orbiting = !g.orbiting
	}
	if g.orbiting {
		g.orbitAngle += dt * 0.4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.stage.ApplyDamage(30)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.stage.Heal(20)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stage.NextPose()
	}

	g.stage.Update(dt)
	return nil
}

func (g *VerificationGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 18, 26, 255})

	scene := g.stage.Compose()

	// 环绕相机：绕配置相机的注视点旋转，保持半径与高度
	cam := scene.Camera
	offset := cam.Position.Sub(cam.LookAt)
	radius := math.Hypot(offset.X(), offset.Z())
	base := math.Atan2(offset.Z(), offset.X())
	angle := base + g.orbitAngle
	cam.Position = mgl64.Vec3{
		cam.LookAt.X() + radius*math.Cos(angle),
		cam.Position.Y(),
		cam.LookAt.Z() + radius*math.Sin(angle),
	}
	proj := utils.NewProjector(cam, config.WindowWidth, config.WindowHeight)

	scene.Root.Walk(func(n *scenegraph.Node) bool {
		if !n.Visible {
			return false
		}
		x, y, ok := proj.ProjectNodeOrigin(n)
		if !ok {
			return true
		}
		c := nodeColor(n)
		vector.StrokeLine(screen, float32(x-2), float32(y), float32(x+2), float32(y), 1, c, false)
		vector.StrokeLine(screen, float32(x), float32(y-2), float32(x), float32(y+2), 1, c, false)
		if p := n.Parent(); p != nil {
			if px, py, pok := proj.ProjectNodeOrigin(p); pok {
				vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1, c, false)
			}
		}
		return true
	})

	gs := game.GetGameState()
	info := "=== 舞台验证 ===\n"
	info += fmt.Sprintf("时间: %.1fs  分数: %d  姿势: %d\n", gs.ElapsedTime, gs.Score, gs.PoseIndex)
	info += fmt.Sprintf("能量: %.1f  存活: %v\n", g.stage.Figure().Energy(), g.stage.Figure().Alive())
	info += fmt.Sprintf("节点: %d  光源: %d\n", scene.Root.Count(), len(scene.Lights))
	info += "\n操作:\n"
	info += "  空格 : 暂停/恢复环绕\n"
	info += "  D H  : 伤害 / 治疗\n"
	info += "  N    : 跳过当前姿势\n"
	ebitenutil.DebugPrint(screen, info)
}

func (g *VerificationGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// nodeColor 按节点语义着色，机器人绿色、特效黄色、其余灰色
func nodeColor(n *scenegraph.Node) color.Color {
	for p := n; p != nil; p = p.Parent() {
		switch p.Name {
		case "robot":
			return color.RGBA{120, 220, 160, 255}
		case "effects":
			return color.RGBA{255, 213, 79, 255}
		}
	}
	return color.RGBA{130, 130, 150, 255}
}

// ========== 主函数 ==========

func main() {
	runGUI := flag.Bool("gui", true, "是否运行图形界面")
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ltime)

	log.Printf("====== 舞台场景验证 ======")
	log.Println()

	embedded.Init(robostage.DataFS)

	stage, err := scenes.NewStageScene(nil, nil)
	if err != nil {
		log.Fatalf("场景创建失败: %v", err)
	}

	log.Println(">>> 步骤 1: 场景组装")
	validateAssembly(stage)

	log.Println("\n>>> 步骤 2: 光源与相机")
	validateLighting(stage)

	log.Println("\n>>> 步骤 3: 纹理引用")
	validateTextureRefs(stage)

	log.Println("\n>>> 步骤 4: 帧循环")
	validateFrameLoop(stage)

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

	// 图形模式重开一个舞台，丢弃空跑 10 秒留下的状态
	log.Println("\n>>> 步骤 5: 启动图形界面")
	viewStage, err := scenes.NewStageScene(nil, nil)
	if err != nil {
		log.Fatalf("场景创建失败: %v", err)
	}

	verification := &VerificationGame{stage: viewStage, orbiting: true}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("舞台场景验证")
	if err := ebiten.RunGame(verification); err != nil {
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
